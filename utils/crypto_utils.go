package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// CalculateMD5 문자열의 MD5 해시값을 32자리 소문자 16진수 문자열로 반환
func CalculateMD5(input string) string {
	hasher := md5.New()
	hasher.Write([]byte(input))
	return hex.EncodeToString(hasher.Sum(nil))
}
