package recommend

import "errors"

var (
	// 코퍼스가 없거나 비어 있음
	ErrCorpusUnavailable = errors.New("policy corpus unavailable")
	// 임베딩 모드에서 질의 임베딩 실패
	ErrEncodeFailed = errors.New("query encoding failed")
	// 허용 나이 범위를 벗어난 프로필
	ErrInvalidProfile = errors.New("invalid user profile")
)
