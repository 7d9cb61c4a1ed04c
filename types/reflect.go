// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// 执行器通过反射调用的方法前缀
const (
	ExecPrefix      = "Exec_"
	ExecLocalPrefix = "ExecLocal_"
	QueryPrefix     = "Query_"
)

var methodCache sync.Map

// Is this an exported - upper case - name?
func isExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// ListMethod 列出执行器中 Exec_/ExecLocal_/Query_ 开头的方法, 按类型缓存
func ListMethod(action interface{}) map[string]reflect.Method {
	typ := reflect.TypeOf(action)
	if methods, ok := methodCache.Load(typ); ok {
		return methods.(map[string]reflect.Method)
	}
	methods := make(map[string]reflect.Method)
	for m := 0; m < typ.NumMethod(); m++ {
		method := typ.Method(m)
		mname := method.Name
		// Method must be exported.
		if method.PkgPath != "" || !isExported(mname) {
			continue
		}
		if strings.HasPrefix(mname, ExecPrefix) || strings.HasPrefix(mname, ExecLocalPrefix) ||
			strings.HasPrefix(mname, QueryPrefix) {
			methods[mname] = method
		}
	}
	methodCache.Store(typ, methods)
	return methods
}

// IsNilVal 是否为空值
func IsNilVal(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// CallMethod 调用返回 (T, error) 的方法, T 为 nil 时返回 nil
func CallMethod(this reflect.Value, m reflect.Method, args ...interface{}) (interface{}, error) {
	in := make([]reflect.Value, 0, len(args)+1)
	in = append(in, this)
	for _, arg := range args {
		if v, ok := arg.(reflect.Value); ok {
			in = append(in, v)
		} else {
			in = append(in, reflect.ValueOf(arg))
		}
	}
	ret := m.Func.Call(in)
	if len(ret) != 2 {
		return nil, ErrMethodReturnType
	}
	var err error
	if !IsNilVal(ret[1]) {
		e, ok := ret[1].Interface().(error)
		if !ok {
			return nil, ErrMethodReturnType
		}
		err = e
	}
	if IsNilVal(ret[0]) {
		return nil, err
	}
	return ret[0].Interface(), err
}
