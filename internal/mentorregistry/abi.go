// Package mentorregistry wraps the MentorRegistry contract: its ABI, relayed call data,
// EIP-712 typed data, read-only calls and revert messages.
package mentorregistry

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	MethodRegisterMentorByRelayer = "registerMentorByRelayer"
	MethodUpdateAddressByRelayer  = "updateAddressByRelayer"
	MethodGetNonce                = "getNonce"
	MethodUsernameExists          = "usernameExists"
	MethodGetMentor               = "getMentor"
	MethodGetMentorByAddress      = "getMentorByAddress"

	ErrorAddressAlreadyExists  = "AddressAlreadyExists"
	ErrorUsernameAlreadyExists = "UsernameAlreadyExists"
	ErrorDeadlineExceeded      = "DeadlineExceeded"
	ErrorInvalidSignature      = "InvalidSignature"
)

// registryABI is the subset of the MentorRegistry ABI used by the service
const registryABI = `[
	{"type":"error","name":"AddressAlreadyExists","inputs":[]},
	{"type":"error","name":"DeadlineExceeded","inputs":[]},
	{"type":"error","name":"EmptyUsername","inputs":[]},
	{"type":"error","name":"InvalidSignature","inputs":[]},
	{"type":"error","name":"InvalidUsernameFormat","inputs":[]},
	{"type":"error","name":"MentorDoesNotExist","inputs":[]},
	{"type":"error","name":"NonceMismatch","inputs":[]},
	{"type":"error","name":"Unauthorized","inputs":[]},
	{"type":"error","name":"UsernameAlreadyExists","inputs":[]},
	{"type":"function","name":"registerMentorByRelayer","stateMutability":"nonpayable","outputs":[],"inputs":[
		{"name":"_username","type":"string"},
		{"name":"_mentorAddress","type":"address"},
		{"name":"_deadline","type":"uint256"},
		{"name":"_v","type":"uint8"},
		{"name":"_r","type":"bytes32"},
		{"name":"_s","type":"bytes32"}]},
	{"type":"function","name":"updateAddressByRelayer","stateMutability":"nonpayable","outputs":[],"inputs":[
		{"name":"_username","type":"string"},
		{"name":"_newAddress","type":"address"},
		{"name":"_deadline","type":"uint256"},
		{"name":"_v","type":"uint8"},
		{"name":"_r","type":"bytes32"},
		{"name":"_s","type":"bytes32"}]},
	{"type":"function","name":"getNonce","stateMutability":"view",
		"inputs":[{"name":"_address","type":"address"}],
		"outputs":[{"name":"nonce","type":"uint256"}]},
	{"type":"function","name":"usernameExists","stateMutability":"view",
		"inputs":[{"name":"_username","type":"string"}],
		"outputs":[{"name":"exists","type":"bool"}]},
	{"type":"function","name":"getMentor","stateMutability":"view",
		"inputs":[{"name":"_username","type":"string"}],
		"outputs":[{"name":"username","type":"string"},{"name":"currentAddress","type":"address"},{"name":"exists","type":"bool"}]},
	{"type":"function","name":"getMentorByAddress","stateMutability":"view",
		"inputs":[{"name":"_mentorAddress","type":"address"}],
		"outputs":[{"name":"username","type":"string"},{"name":"mentorAddr","type":"address"},{"name":"exists","type":"bool"}]}
]`

var parsedABI = mustParseABI()

func mustParseABI() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(registryABI))
	if err != nil {
		panic(fmt.Sprintf("failed to parse MentorRegistry ABI: %v", err))
	}
	return parsed
}

// ABI returns the parsed registry ABI
func ABI() abi.ABI {
	return parsedABI
}

// ErrorSelector returns the 4-byte selector of a custom error as 0x-prefixed hex
func ErrorSelector(name string) string {
	e, ok := parsedABI.Errors[name]
	if !ok {
		return ""
	}
	return hexutil.Encode(e.ID[:4])
}
