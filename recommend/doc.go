// Package recommend 청년정책 추천 엔진.
//
// 요청은 네 단계를 거친다:
//
//   - 전체 코퍼스에 대한 자격 필터 (지역, 나이)
//   - 남은 후보의 점수 계산: 임베딩 유사도에 카테고리 가중치를 곱하거나,
//     임베딩이 없는 코퍼스에서는 키워드-카테고리 일치로 계산
//   - 다양화 top-K 선택: 상위 CandidatePoolSize 개 후보 풀에서 K 개를 무작위로 뽑고
//     점수순으로 다시 정렬
//   - 정규화된 프로필과 K 의 지문을 키로 하는 응답 캐시
//
// 점수 계산 방식은 Engine 생성 시 정해지고 바뀌지 않는다. Engine 은 동시 호출에 안전하다.
package recommend
