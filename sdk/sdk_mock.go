//go:build test
// +build test

package sdk

func StateSetObject(key, value string)                                {}
func StateGetObject(key string) *string                               { return nil }
func GetEnvKey(key string) *string                                    { return nil }
func Log(msg string)                                                  {}
func Abort(msg string)                                                {}
func ContractCall(contractId Address, method, payload string) *string { return nil }
