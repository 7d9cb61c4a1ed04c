// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrNotFound                = errors.New("ErrNotFound")
	ErrAmount                  = errors.New("ErrAmount")
	ErrNoBalance               = errors.New("ErrNoBalance")
	ErrSendSameToRecv          = errors.New("ErrSendSameToRecv")
	ErrNotAuthorized           = errors.New("ErrNotAuthorized")
	ErrAccountOwnerSet         = errors.New("ErrAccountOwnerSet")
	ErrExecNameNotAllow        = errors.New("ErrExecNameNotAllow")
	ErrSymbolNameNotAllow      = errors.New("ErrSymbolNameNotAllow")
	ErrSign                    = errors.New("ErrSign")
	ErrTxMsgSizeTooBig         = errors.New("ErrTxMsgSizeTooBig")
	ErrTxExpire                = errors.New("ErrTxExpire")
	ErrTxDup                   = errors.New("ErrTxDup")
	ErrToAddrNotSameToExecAddr = errors.New("ErrToAddrNotSameToExecAddr")
	ErrUnRegistedDriver        = errors.New("ErrUnRegistedDriver")
	ErrActionNotSupport        = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport         = errors.New("ErrQueryNotSupport")
	ErrMethodReturnType        = errors.New("ErrMethodReturnType")
	ErrInvalidParam            = errors.New("ErrInvalidParam")
	ErrNotAllowMemSetKey       = errors.New("ErrNotAllowMemSetKey")
	ErrNotAllowKey             = errors.New("ErrNotAllowKey")
	ErrDecode                  = errors.New("ErrDecode")
	ErrNotSupport              = errors.New("ErrNotSupport")
	ErrGenesisNotAllow         = errors.New("ErrGenesisNotAllow")
	ErrTxCountTooBig           = errors.New("ErrTxCountTooBig")
	ErrExecutorClosed          = errors.New("ErrExecutorClosed")
	ErrBlockNotFound           = errors.New("ErrBlockNotFound")
)
