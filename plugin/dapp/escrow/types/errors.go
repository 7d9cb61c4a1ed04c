// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrDuplicateGame        = errors.New("ErrDuplicateGame")
	ErrGameNotFound         = errors.New("ErrGameNotFound")
	ErrGameNotWaiting       = errors.New("ErrGameNotWaiting")
	ErrGameFull             = errors.New("ErrGameFull")
	ErrInvalidGameStatus    = errors.New("ErrInvalidGameStatus")
	ErrGameNotInProgress    = errors.New("ErrGameNotInProgress")
	ErrInvalidWinner        = errors.New("ErrInvalidWinner")
	ErrInvalidVault         = errors.New("ErrInvalidVault")
	ErrInvalidWinnerAccount = errors.New("ErrInvalidWinnerAccount")
	ErrFinalizeNotAllowed   = errors.New("ErrFinalizeNotAllowed")
	ErrInvalidAuthority     = errors.New("ErrInvalidAuthority")
	ErrInvalidConfig        = errors.New("ErrInvalidConfig")
)
