/*
Package validation 애플리케이션 설정값의 유효성을 검사하는 순수 함수를 제공합니다.

이 패키지는 외부 입력값(환경변수, 설정 파일)에 대한 신뢰성을 보장하기 위해 설계되었으며,
가능한 한 표준(Standard)과 보안 권장 사항을 엄격하게 준수하는 것을 목표로 합니다.

주요 기능:

  - CORS (Cross-Origin Resource Sharing) Origin 검증
  - MongoDB 연결 문자열(mongodb://, mongodb+srv://) 검증
  - HTTP(S) URL, 포트, 호스트명 검증

사용 시 주의사항:

  - 모든 검증 함수는 유효하지 않은 입력에 대해 명확한 error를 반환합니다.
  - 패키지 내 함수들은 상태를 가지지 않으므로 동시에 호출해도 안전합니다.
*/
package validation
