// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/dontclickthat/escrow/common/db"
	et "github.com/dontclickthat/escrow/plugin/dapp/escrow/types"
	"github.com/dontclickthat/escrow/types"
)

// Query_GetGame 按 id 查询
func (e *Escrow) Query_GetGame(in *et.QueryGameInfo) (types.Message, error) {
	game, err := readGame(e.GetStateDB(), in.GetGameId())
	if err != nil {
		return nil, err
	}
	return game, nil
}

// Query_GetGames 批量查询, 任何一个不存在都返回错误
func (e *Escrow) Query_GetGames(in *et.QueryGameInfos) (types.Message, error) {
	games := make([]*et.Game, 0, len(in.GetGameIds()))
	for _, id := range in.GetGameIds() {
		game, err := readGame(e.GetStateDB(), id)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return &et.ReplyGameList{Games: games}, nil
}

// Query_ListGames 按状态或者状态+地址分页
func (e *Escrow) Query_ListGames(in *et.ReqListGames) (types.Message, error) {
	if et.StatusName(in.GetStatus()) == "Unknown" {
		return nil, types.ErrInvalidParam
	}
	count := in.GetCount()
	if count <= 0 {
		count = et.DefaultCount
	}
	if count > et.MaxCount {
		count = et.MaxCount
	}
	var prefix, key []byte
	if in.GetAddr() == "" {
		prefix = calcStatusIndexPrefix(in.GetStatus())
		if in.GetIndex() > 0 {
			key = calcStatusIndexKey(in.GetStatus(), in.GetIndex())
		}
	} else {
		prefix = calcAddrIndexPrefix(in.GetStatus(), in.GetAddr())
		if in.GetIndex() > 0 {
			key = calcAddrIndexKey(in.GetStatus(), in.GetAddr(), in.GetIndex())
		}
	}
	values, err := e.GetLocalDB().List(prefix, key, count, in.GetDirection())
	if err != nil {
		return nil, err
	}
	return &et.ReplyGameList{Games: gameList(e.GetStateDB(), values)}, nil
}

//安全批量查询方式,防止因为脏数据导致查询接口奔溃
func gameList(db dbm.KV, values [][]byte) []*et.Game {
	games := make([]*et.Game, 0, len(values))
	for _, value := range values {
		var record et.EscrowRecord
		if err := types.Decode(value, &record); err != nil {
			elog.Error("gameList decode", "err", err)
			continue
		}
		game, err := readGame(db, record.GetGameId())
		if err != nil {
			continue
		}
		games = append(games, game)
	}
	return games
}

// Query_GetGameCount 某个状态(以及地址)下的游戏数量
func (e *Escrow) Query_GetGameCount(in *et.ReqGameCount) (types.Message, error) {
	if et.StatusName(in.GetStatus()) == "Unknown" {
		return nil, types.ErrInvalidParam
	}
	if in.GetAddr() == "" {
		return e.GetPrefixCount(calcStatusIndexPrefix(in.GetStatus())), nil
	}
	return e.GetPrefixCount(calcAddrIndexPrefix(in.GetStatus(), in.GetAddr())), nil
}

// Query_GetVault 金库的实际余额, stake 可能使余额超过 total_pot
func (e *Escrow) Query_GetVault(in *et.QueryGameInfo) (types.Message, error) {
	game, err := readGame(e.GetStateDB(), in.GetGameId())
	if err != nil {
		return nil, err
	}
	acc := e.GetCoinsAccount().LoadAccount(game.GetVault())
	reply := &et.ReplyVault{
		GameId:   game.GetGameId(),
		Vault:    game.GetVault(),
		Owner:    acc.GetOwner(),
		Balance:  acc.GetBalance(),
		TotalPot: game.GetTotalPot(),
	}
	//finished 之后 total_pot 已经支付
	pot := game.GetTotalPot()
	if game.GetStatus() == et.StatusFinished {
		pot = 0
	}
	if reply.Balance > pot {
		reply.Excess = reply.Balance - pot
	}
	return reply, nil
}
