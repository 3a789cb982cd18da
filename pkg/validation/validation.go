package validation

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// ValidateCORSOrigin 주어진 문자열이 유효한 CORS Origin('Scheme://Host[:Port]')인지 검증합니다.
//
// 와일드카드('*')는 유효하며, 스키마는 http/https만 허용합니다.
// 경로, 후행 슬래시, 쿼리, 프래그먼트, 사용자 자격 증명을 포함하면 유효하지 않습니다.
func ValidateCORSOrigin(origin string) error {
	trimmedOrigin := strings.TrimSpace(origin)
	if trimmedOrigin == "*" {
		return nil
	}
	if trimmedOrigin == "" {
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	}
	if strings.HasSuffix(trimmedOrigin, "/") {
		return fmt.Errorf("CORS Origin 포맷 오류: 경로 구분자('/')로 끝날 수 없습니다 (input=%q)", trimmedOrigin)
	}

	parsedURL, err := url.Parse(trimmedOrigin)
	if err != nil {
		return fmt.Errorf("CORS Origin 파싱 실패: 유효한 URL 형식이 아닙니다 (input=%q): %w", trimmedOrigin, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("CORS Origin 스키마 오류: 'http' 또는 'https'만 허용됩니다 (input=%q)", trimmedOrigin)
	}
	if parsedURL.Path != "" {
		return fmt.Errorf("CORS Origin 포맷 오류: 경로(Path)를 포함할 수 없습니다 (input=%q)", trimmedOrigin)
	}
	if parsedURL.RawQuery != "" || parsedURL.Fragment != "" {
		return fmt.Errorf("CORS Origin 포맷 오류: 쿼리 또는 Fragment(#)를 포함할 수 없습니다 (input=%q)", trimmedOrigin)
	}
	if parsedURL.User != nil {
		return fmt.Errorf("CORS Origin 포맷 오류: 사용자 자격 증명(UserInfo)을 포함할 수 없습니다 (input=%q)", trimmedOrigin)
	}

	if err := validateURLPort(parsedURL); err != nil {
		return fmt.Errorf("CORS Origin 포트 오류: %w (input=%q)", err, trimmedOrigin)
	}

	host := parsedURL.Hostname()
	if host == "" {
		return fmt.Errorf("CORS Origin 포맷 오류: 호스트(Host) 정보가 누락되었습니다 (input=%q)", trimmedOrigin)
	}
	if err := ValidateHostname(host); err != nil {
		return fmt.Errorf("CORS Origin 호스트 유효성 검증 실패: %w", err)
	}

	return nil
}

// ValidateMongoURI MongoDB 연결 문자열의 형식을 검증합니다.
//
// 'mongodb://' 또는 'mongodb+srv://' 스키마와 하나 이상의 호스트가 필요합니다.
// 'mongodb+srv://'는 포트를 지정할 수 없고 호스트를 하나만 가질 수 있습니다.
// 연결 가능 여부는 검사하지 않습니다.
func ValidateMongoURI(uri string) error {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return fmt.Errorf("MongoDB 연결 문자열은 비어있을 수 없습니다")
	}

	var rest string
	var srv bool
	switch {
	case strings.HasPrefix(uri, "mongodb://"):
		rest = strings.TrimPrefix(uri, "mongodb://")
	case strings.HasPrefix(uri, "mongodb+srv://"):
		rest = strings.TrimPrefix(uri, "mongodb+srv://")
		srv = true
	default:
		return fmt.Errorf("MongoDB 연결 문자열은 'mongodb://' 또는 'mongodb+srv://'로 시작해야 합니다")
	}

	// 자격 증명에 '/'나 '?'가 포함될 수 있으므로 '@' 이후부터 호스트 목록을 찾습니다.
	if at := strings.LastIndex(rest, "@"); at != -1 {
		rest = rest[at+1:]
	}
	if end := strings.IndexAny(rest, "/?"); end != -1 {
		rest = rest[:end]
	}
	if rest == "" {
		return fmt.Errorf("MongoDB 연결 문자열에 호스트 정보가 누락되었습니다")
	}

	hosts := strings.Split(rest, ",")
	if srv && len(hosts) != 1 {
		return fmt.Errorf("'mongodb+srv://' 연결 문자열은 하나의 호스트만 지정할 수 있습니다")
	}

	for _, h := range hosts {
		if h == "" {
			return fmt.Errorf("MongoDB 연결 문자열에 빈 호스트가 포함되어 있습니다")
		}

		host, port := h, ""
		if strings.HasPrefix(h, "[") || strings.Count(h, ":") == 1 {
			var err error
			if host, port, err = net.SplitHostPort(h); err != nil {
				if !strings.HasPrefix(h, "[") {
					return fmt.Errorf("MongoDB 호스트 형식이 올바르지 않습니다 (host=%q)", h)
				}
				host = strings.Trim(h, "[]")
			}
		}

		if port != "" {
			if srv {
				return fmt.Errorf("'mongodb+srv://' 연결 문자열에는 포트를 지정할 수 없습니다")
			}
			p, err := strconv.Atoi(port)
			if err != nil {
				return fmt.Errorf("MongoDB 포트 번호가 유효하지 않습니다 (port=%s)", port)
			}
			if err := ValidatePort(p); err != nil {
				return err
			}
		}

		if err := ValidateHostname(host); err != nil {
			return fmt.Errorf("MongoDB 호스트 유효성 검증 실패: %w", err)
		}
	}

	return nil
}

// ValidateHTTPURL http/https 절대 URL인지 검증합니다. (경로는 허용)
func ValidateHTTPURL(rawURL string) error {
	parsedURL, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return fmt.Errorf("URL 파싱 실패 (input=%q): %w", rawURL, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL 스키마는 'http' 또는 'https'여야 합니다 (input=%q)", rawURL)
	}
	if parsedURL.Hostname() == "" {
		return fmt.Errorf("URL에 호스트 정보가 누락되었습니다 (input=%q)", rawURL)
	}
	if err := validateURLPort(parsedURL); err != nil {
		return err
	}

	return ValidateHostname(parsedURL.Hostname())
}

// ValidatePort 포트 번호가 유효한 범위(1-65535) 내에 있는지 검증합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

func validateURLPort(u *url.URL) error {
	portStr := u.Port()
	if portStr == "" {
		return nil
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("포트 번호가 유효하지 않습니다 (port=%s)", portStr)
	}

	return ValidatePort(port)
}

// ValidateHostname 호스트명이 localhost, IP 주소, 또는 RFC 1123 도메인명인지 검증합니다.
//
// 도메인명은 최대 253자, 레이블당 1~63자의 영문/숫자/하이픈으로 구성되며
// 하이픈으로 시작하거나 끝날 수 없고, 최상위 도메인은 숫자로만 구성될 수 없습니다.
func ValidateHostname(host string) error {
	if host == "localhost" {
		return nil
	}
	if ip := net.ParseIP(host); ip != nil {
		return nil
	}

	if len(host) > 253 {
		return fmt.Errorf("호스트명 전체 길이는 253자를 초과할 수 없습니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if len(label) == 0 {
			return fmt.Errorf("호스트명에 빈 레이블(연속된 점 등)이 포함되어 있습니다 (host=%q)", host)
		}
		if len(label) > 63 {
			return fmt.Errorf("각 레이블은 63자를 초과할 수 없습니다 (label=%q)", label)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("레이블은 하이픈(-)으로 시작하거나 끝날 수 없습니다 (label=%q)", label)
		}

		for _, r := range label {
			isValidChar := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-'
			if !isValidChar {
				return fmt.Errorf("호스트명은 영문, 숫자, 하이픈(-)으로만 구성되어야 합니다 (invalid_char=%q, host=%q)", r, host)
			}
		}
	}

	tld := labels[len(labels)-1]
	if strings.Trim(tld, "0123456789") == "" {
		return fmt.Errorf("최상위 도메인(TLD)은 숫자로만 구성될 수 없습니다 (tld=%q)", tld)
	}

	return nil
}
