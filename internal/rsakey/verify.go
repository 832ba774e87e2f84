package rsakey

import "math/big"

// TestMessage is the plaintext used by VerifyKeyPair.
const TestMessage int64 = 12345

// Encrypt returns message ^ pub.Exponent (mod pub.Modulus).
func Encrypt(pub KeyPair, message *big.Int) *big.Int {
	return new(big.Int).Exp(message, pub.Exponent, pub.Modulus)
}

// Decrypt returns cipher ^ priv.Exponent (mod priv.Modulus).
func Decrypt(priv KeyPair, cipher *big.Int) *big.Int {
	return new(big.Int).Exp(cipher, priv.Exponent, priv.Modulus)
}

// Reduce returns message mod modulus, the value a round trip can recover.
func Reduce(message, modulus *big.Int) *big.Int {
	return new(big.Int).Mod(message, modulus)
}

// VerifyMessage encrypts message with the public exponent, decrypts the
// result with the private one and reports whether message mod modulus
// came back.
func VerifyMessage(message, publicExp, privateExp, modulus *big.Int) bool {
	if modulus.Sign() <= 0 || publicExp.Sign() < 0 || privateExp.Sign() < 0 {
		return false
	}
	m := Reduce(message, modulus)
	cipher := Encrypt(KeyPair{Exponent: publicExp, Modulus: modulus}, m)
	recovered := Decrypt(KeyPair{Exponent: privateExp, Modulus: modulus}, cipher)
	return recovered.Cmp(m) == 0
}

// VerifyKeyPair runs VerifyMessage on TestMessage.
func VerifyKeyPair(publicExp, privateExp, modulus *big.Int) bool {
	return VerifyMessage(big.NewInt(TestMessage), publicExp, privateExp, modulus)
}
