// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 定义了账本核心以及执行器共用的数据结构
package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/golang/protobuf/jsonpb"
	"github.com/golang/protobuf/proto"
)

// Message 所有可以编码的消息
type Message = proto.Message

//Encode  编码
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

//Size  消息大小
func Size(data proto.Message) int {
	return proto.Size(data)
}

//Decode  解码
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

//JSONToPB  JSON格式转换成protobuffer格式
func JSONToPB(data []byte, msg proto.Message) error {
	return jsonpb.Unmarshal(bytes.NewReader(data), msg)
}

//PBToJSON 消息转换为 JSON, 用于命令行输出
func PBToJSON(r Message) ([]byte, error) {
	encode := &jsonpb.Marshaler{EmitDefaults: true, Indent: "    "}
	var buf bytes.Buffer
	if err := encode.Marshal(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

//MustDecode 数据是否已经编码
func MustDecode(data []byte, v interface{}) {
	if data == nil {
		return
	}
	err := json.Unmarshal(data, v)
	if err != nil {
		panic(err)
	}
}

//NewErrReceipt  new一个新的Receipt
func NewErrReceipt(err error) *Receipt {
	berr := err.Error()
	errlog := &ReceiptLog{Ty: TyLogErr, Log: []byte(berr)}
	return &Receipt{Ty: ExecErr, KV: nil, Logs: []*ReceiptLog{errlog}}
}

// MergeReceipt 合并两个回执, 后者的 KV 和 Logs 追加在前者后面
func MergeReceipt(receipt1, receipt2 *Receipt) *Receipt {
	if receipt2 == nil {
		return receipt1
	}
	if receipt1 == nil {
		return receipt2
	}
	receipt1.Ty = receipt2.Ty
	receipt1.KV = append(receipt1.KV, receipt2.KV...)
	receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	return receipt1
}

// HeightIndexStr 根据高度和交易序号生成本地索引的排序字段
func HeightIndexStr(height, index int64) string {
	v := height*MaxTxsPerBlock + index
	return fmt.Sprintf("%018d", v)
}

// CalcLocalKey 生成执行器的本地数据库 key
func CalcLocalKey(execer []byte, key []byte) []byte {
	k := make([]byte, 0, len(LocalPrefix)+len(execer)+len(key)+2)
	k = append(k, LocalPrefix...)
	k = append(k, '-')
	k = append(k, execer...)
	k = append(k, '-')
	return append(k, key...)
}

// CalcStatePrefix 生成执行器的状态数据库前缀
func CalcStatePrefix(execer []byte) []byte {
	s := append([]byte{}, StatePrefix...)
	s = append(s, '-')
	s = append(s, execer...)
	s = append(s, '-')
	return s
}
