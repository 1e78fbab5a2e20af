package sm2p256

import (
	"math/big"
)

// coordinateSize is the byte length of an encoded field element or scalar.
const coordinateSize = 32

// SM2 recommended curve parameters (GM/T 0003.5-2012):
//
//	y^2 = x^3 + a*x + b  over  GF(p)
var (
	curveP  = mustHex("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFF")
	curveA  = mustHex("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFC")
	curveB  = mustHex("28E9FA9E9D9F5E344D5A9E4BCF6509A7F39789F515AB8F92DDBCBD414D940E93")
	curveGx = mustHex("32C4AE2C1F1981195F9904466A39C9948FE30BBFF2660BE1715A4589334C74C7")
	curveGy = mustHex("BC3736A2F4F6779C59BDCEE36B692153D0A9877CC62A474002DF32E52139F0A0")
	curveN  = mustHex("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFF7203DF6B21C6052B53BBF40939D54123")
)

var (
	zero = new(big.Int)

	fp = newModulus(curveP)
	fn = newModulus(curveN)

	feA     = fieldElement{n: curveA}
	feB     = fieldElement{n: curveB}
	feThree = fieldElement{n: big.NewInt(3)}

	nMinusOne = new(big.Int).Sub(curveN, big.NewInt(1))
)

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("sm2p256: invalid curve constant " + s)
	}
	return v
}

// P returns a copy of the field prime.
func P() *big.Int { return new(big.Int).Set(curveP) }

// N returns a copy of the order of the base point.
func N() *big.Int { return new(big.Int).Set(curveN) }
