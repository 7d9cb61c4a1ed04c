// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	et "github.com/dontclickthat/escrow/plugin/dapp/escrow/types"
	"github.com/dontclickthat/escrow/types"
)

// Exec_Create initialize_game
func (e *Escrow) Exec_Create(payload *et.EscrowCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(e, tx, index)
	return action.GameCreate(payload)
}

// Exec_Join join_game
func (e *Escrow) Exec_Join(payload *et.EscrowJoin, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(e, tx, index)
	return action.GameJoin(payload)
}

// Exec_Stake stake_tokens
func (e *Escrow) Exec_Stake(payload *et.EscrowStake, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(e, tx, index)
	return action.GameStake(payload)
}

// Exec_Finalize finalize_game
func (e *Escrow) Exec_Finalize(payload *et.EscrowFinalize, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(e, tx, index)
	return action.GameFinalize(payload)
}
