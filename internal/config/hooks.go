package config

import (
	"reflect"
	"strings"
	"time"

	"github.com/darkkaiser/webapp-server/pkg/strutil"
	"github.com/go-viper/mapstructure/v2"
)

// stringToSliceHookFunc 쉼표(,)로 구분된 문자열을 []string으로 변환합니다.
// 각 항목의 앞뒤 공백을 제거하고 빈 항목은 제외합니다. (예: WEBAPP_CORS__ALLOW_ORIGINS)
func stringToSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice {
			return data, nil
		}
		if t.Elem().Kind() != reflect.String {
			return data, nil
		}

		items := strutil.SplitAndTrim(reflect.ValueOf(data).String(), ",")
		if items == nil {
			return []string{}, nil
		}
		return items, nil
	}
}

// stringToDurationHookFunc 문자열을 time.Duration으로 변환합니다.
//
// 단위가 있는 값("5s", "1m30s")은 time.ParseDuration으로, 단위가 없는 정수 문자열은 밀리초로 해석합니다.
// time.Duration 타입에만 적용되며, 다른 int64 필드는 변환하지 않습니다.
func stringToDurationHookFunc() mapstructure.DecodeHookFunc {
	durationType := reflect.TypeOf(time.Duration(0))

	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != durationType {
			return data, nil
		}

		s := strings.TrimSpace(reflect.ValueOf(data).String())
		if d, err := time.ParseDuration(s); err == nil {
			return d, nil
		}

		if ms, err := time.ParseDuration(s + "ms"); err == nil {
			return ms, nil
		}

		// 변환할 수 없는 값은 mapstructure의 기본 처리에 맡겨 타입 에러가 보고되도록 합니다.
		return data, nil
	}
}
