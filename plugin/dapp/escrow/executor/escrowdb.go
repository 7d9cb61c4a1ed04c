// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

//database opeartion for executor escrow
import (
	"math"

	"github.com/dontclickthat/escrow/account"
	"github.com/dontclickthat/escrow/common"
	dbm "github.com/dontclickthat/escrow/common/db"
	et "github.com/dontclickthat/escrow/plugin/dapp/escrow/types"
	"github.com/dontclickthat/escrow/types"
)

/*
 一局游戏的生命周期:
   Create   -> status = WaitingForPlayer, total_pot = 0
   Join     -> status = InProgress,       total_pot = 2 * stake, player2 = 调用者
   Finalize -> status = Finished,         winner 设置之后不再变化, 金库向 winner 支付 total_pot
 Stake 只向金库存入 stake, 不改变记录.

 金库账户是 coins 账户, owner 为 game 的派生地址, 只有执行器通过 gameAuthority 才能从金库转出.
 所有的检查失败都直接返回错误, 由执行环境回滚这笔交易所有的状态修改.
*/

// Key game 记录在状态数据库中的 key
func Key(addr string) (key []byte) {
	key = append(key, []byte("mavl-"+et.EscrowX+"-game-")...)
	key = append(key, []byte(addr)...)
	return key
}

// Action 一笔 escrow 交易的执行上下文
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	index        int
	cfg          *et.Config
}

// NewAction new
func NewAction(e *Escrow, tx *types.Transaction, index int) *Action {
	return &Action{
		coinsAccount: e.GetCoinsAccount(),
		db:           e.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    e.GetBlockTime(),
		height:       e.GetHeight(),
		index:        index,
		cfg:          e.subcfg,
	}
}

// GetIndex 本地索引的排序字段
func (action *Action) GetIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

// GetReceiptLog 根据 game 当前状态生成日志
func (action *Action) GetReceiptLog(game *et.Game, ty int32, prevStatus int32, amount int64) *types.ReceiptLog {
	r := &et.ReceiptEscrow{
		GameId:     game.GetGameId(),
		Status:     game.GetStatus(),
		PrevStatus: prevStatus,
		Addr:       action.fromaddr,
		Player1:    game.GetPlayer1(),
		Player2:    game.GetPlayer2(),
		Amount:     amount,
		Index:      game.GetIndex(),
		PrevIndex:  game.GetPrevIndex(),
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

func (action *Action) saveGame(game *et.Game) []*types.KeyValue {
	key := Key(game.GetAddress())
	value := types.Encode(game)
	if err := action.db.Set(key, value); err != nil {
		panic(err)
	}
	return []*types.KeyValue{{Key: key, Value: value}}
}

func (action *Action) readGame(gameID uint64) (*et.Game, error) {
	return readGame(action.db, gameID)
}

func readGame(db dbm.KV, gameID uint64) (*et.Game, error) {
	addr, _, err := et.GameAddress(gameID)
	if err != nil {
		return nil, err
	}
	data, err := db.Get(Key(addr))
	if err == dbm.ErrNotFoundInDb {
		return nil, et.ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	var game et.Game
	if err := types.Decode(data, &game); err != nil {
		elog.Error("decode game", "id", gameID, "err", err)
		return nil, err
	}
	return &game, nil
}

// checkStake stake 必须为正数, 并且 2*stake 也是合法的金额
func (action *Action) checkStake(stake int64) error {
	if stake <= 0 || stake > math.MaxInt64/2 {
		return types.ErrAmount
	}
	if !types.CheckAmount(2 * stake) {
		return types.ErrAmount
	}
	if action.cfg.MaxStakeAmount > 0 && stake > action.cfg.MaxStakeAmount {
		return types.ErrAmount
	}
	return nil
}

// checkVault 为空时使用记录中的金库
func checkVault(game *et.Game, vault string) error {
	if vault != "" && vault != game.GetVault() {
		return et.ErrInvalidVault
	}
	return nil
}

func (action *Action) sourceAccount(from string) string {
	if from == "" {
		return action.fromaddr
	}
	return from
}

// GameCreate initialize_game, 不转移任何资产
func (action *Action) GameCreate(create *et.EscrowCreate) (*types.Receipt, error) {
	id := create.GetGameId()
	if err := action.checkStake(create.GetStakeAmount()); err != nil {
		elog.Error("GameCreate", "addr", action.fromaddr, "id", id, "stake", create.GetStakeAmount(), "err", err)
		return nil, err
	}
	addr, bump, err := et.GameAddress(id)
	if err != nil {
		return nil, err
	}
	_, err = action.db.Get(Key(addr))
	if err == nil {
		elog.Error("GameCreate", "addr", action.fromaddr, "id", id, "err", et.ErrDuplicateGame)
		return nil, et.ErrDuplicateGame
	}
	if err != dbm.ErrNotFoundInDb {
		return nil, err
	}
	vault, err := et.VaultAddress(id)
	if err != nil {
		return nil, err
	}
	//金库账户归 game 的派生地址所有
	receipt, err := action.coinsAccount.InitOwner(vault, addr)
	if err != nil {
		elog.Error("GameCreate.InitOwner", "vault", vault, "owner", addr, "err", err)
		return nil, err
	}
	game := &et.Game{
		GameId:        id,
		Player1:       action.fromaddr,
		StakeAmount:   create.GetStakeAmount(),
		Seed:          create.GetSeed(),
		Status:        et.StatusWaitingForPlayer,
		AuthorityBump: uint32(bump),
		Address:       addr,
		Vault:         vault,
		CreateTime:    action.blocktime,
		CreateTxHash:  common.ToHex(action.txhash),
	}
	game.Index = action.GetIndex()

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	kv = append(kv, action.saveGame(game)...)
	kv = append(kv, receipt.KV...)
	logs = append(logs, receipt.Logs...)
	logs = append(logs, action.GetReceiptLog(game, et.TyLogEscrowCreate, 0, 0))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// GameJoin join_game, 调用者成为 player2 并存入 stake
func (action *Action) GameJoin(join *et.EscrowJoin) (*types.Receipt, error) {
	game, err := action.readGame(join.GetGameId())
	if err != nil {
		elog.Error("GameJoin", "addr", action.fromaddr, "id", join.GetGameId(), "err", err)
		return nil, err
	}
	if game.GetStatus() != et.StatusWaitingForPlayer {
		elog.Error("GameJoin", "addr", action.fromaddr, "id", join.GetGameId(), "status", game.GetStatus(), "err", et.ErrGameNotWaiting)
		return nil, et.ErrGameNotWaiting
	}
	if game.GetPlayer2() != "" {
		return nil, et.ErrGameFull
	}
	if err := checkVault(game, join.GetVault()); err != nil {
		return nil, err
	}
	from := action.sourceAccount(join.GetFrom())
	receipt, err := action.coinsAccount.TransferFrom(from, game.GetVault(), action.fromaddr, game.GetStakeAmount())
	if err != nil {
		elog.Error("GameJoin.TransferFrom", "from", from, "vault", game.GetVault(), "amount", game.GetStakeAmount(), "err", err)
		return nil, err
	}
	prevStatus := game.GetStatus()
	game.Player2 = action.fromaddr
	game.TotalPot = 2 * game.GetStakeAmount()
	game.Status = et.StatusInProgress
	game.JoinTime = action.blocktime
	game.JoinTxHash = common.ToHex(action.txhash)
	game.PrevIndex = game.GetIndex()
	game.Index = action.GetIndex()

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	kv = append(kv, receipt.KV...)
	kv = append(kv, action.saveGame(game)...)
	logs = append(logs, receipt.Logs...)
	logs = append(logs, action.GetReceiptLog(game, et.TyLogEscrowJoin, prevStatus, game.GetStakeAmount()))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// GameStake stake_tokens, 只转移资产, 不修改记录
func (action *Action) GameStake(stake *et.EscrowStake) (*types.Receipt, error) {
	game, err := action.readGame(stake.GetGameId())
	if err != nil {
		elog.Error("GameStake", "addr", action.fromaddr, "id", stake.GetGameId(), "err", err)
		return nil, err
	}
	status := game.GetStatus()
	if status != et.StatusWaitingForPlayer && status != et.StatusInProgress {
		elog.Error("GameStake", "addr", action.fromaddr, "id", stake.GetGameId(), "status", status, "err", et.ErrInvalidGameStatus)
		return nil, et.ErrInvalidGameStatus
	}
	if err := checkVault(game, stake.GetVault()); err != nil {
		return nil, err
	}
	from := action.sourceAccount(stake.GetFrom())
	receipt, err := action.coinsAccount.TransferFrom(from, game.GetVault(), action.fromaddr, game.GetStakeAmount())
	if err != nil {
		elog.Error("GameStake.TransferFrom", "from", from, "vault", game.GetVault(), "amount", game.GetStakeAmount(), "err", err)
		return nil, err
	}
	logs := append(receipt.Logs, action.GetReceiptLog(game, et.TyLogEscrowStake, status, game.GetStakeAmount()))
	return &types.Receipt{Ty: types.ExecOk, KV: receipt.KV, Logs: logs}, nil
}

// GameFinalize finalize_game, 记录结束之后由派生地址授权把 total_pot 支付给 winner
func (action *Action) GameFinalize(fin *et.EscrowFinalize) (*types.Receipt, error) {
	game, err := action.readGame(fin.GetGameId())
	if err != nil {
		elog.Error("GameFinalize", "addr", action.fromaddr, "id", fin.GetGameId(), "err", err)
		return nil, err
	}
	if !action.cfg.IsReferee(action.fromaddr) {
		return nil, et.ErrFinalizeNotAllowed
	}
	if game.GetStatus() != et.StatusInProgress {
		elog.Error("GameFinalize", "addr", action.fromaddr, "id", fin.GetGameId(), "status", game.GetStatus(), "err", et.ErrGameNotInProgress)
		return nil, et.ErrGameNotInProgress
	}
	winner := fin.GetWinner()
	if winner == "" || (winner != game.GetPlayer1() && winner != game.GetPlayer2()) {
		return nil, et.ErrInvalidWinner
	}
	if err := checkVault(game, fin.GetVault()); err != nil {
		return nil, err
	}
	winnerAccount := fin.GetWinnerAccount()
	if winnerAccount == "" {
		winnerAccount = winner
	}
	if account.EffectiveOwner(action.coinsAccount.LoadAccount(winnerAccount)) != winner {
		return nil, et.ErrInvalidWinnerAccount
	}
	auth, err := newGameAuthority(game)
	if err != nil {
		return nil, err
	}

	prevStatus := game.GetStatus()
	game.Winner = winner
	game.Status = et.StatusFinished
	game.FinalizeTime = action.blocktime
	game.FinalizeTxHash = common.ToHex(action.txhash)
	game.PrevIndex = game.GetIndex()
	game.Index = action.GetIndex()

	receipt, err := auth.payout(action.coinsAccount, winnerAccount, game.GetTotalPot())
	if err != nil {
		elog.Error("GameFinalize.payout", "vault", game.GetVault(), "to", winnerAccount, "amount", game.GetTotalPot(), "err", err)
		return nil, err
	}
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	kv = append(kv, receipt.KV...)
	kv = append(kv, action.saveGame(game)...)
	logs = append(logs, receipt.Logs...)
	logs = append(logs, action.GetReceiptLog(game, et.TyLogEscrowFinalize, prevStatus, game.GetTotalPot()))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}
