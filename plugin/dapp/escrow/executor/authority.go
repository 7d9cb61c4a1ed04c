// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/dontclickthat/escrow/account"
	et "github.com/dontclickthat/escrow/plugin/dapp/escrow/types"
	"github.com/dontclickthat/escrow/types"
)

// gameAuthority 代表 game 派生地址签名, 只能把金库中的资产转出.
// 每次使用时根据 game_id 和保存的 bump 重新计算, 不保存在任何地方
type gameAuthority struct {
	addr  string
	vault string
}

func newGameAuthority(game *et.Game) (*gameAuthority, error) {
	bump := game.GetAuthorityBump()
	if bump > 255 {
		return nil, et.ErrInvalidAuthority
	}
	addr, err := et.GameAddressWithBump(game.GetGameId(), uint8(bump))
	if err != nil || addr != game.GetAddress() {
		elog.Error("newGameAuthority", "id", game.GetGameId(), "bump", bump, "err", err)
		return nil, et.ErrInvalidAuthority
	}
	return &gameAuthority{addr: addr, vault: game.GetVault()}, nil
}

func (a *gameAuthority) payout(acc *account.DB, to string, amount int64) (*types.Receipt, error) {
	return acc.TransferFrom(a.vault, to, a.addr, amount)
}
