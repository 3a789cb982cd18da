package config

import (
	"fmt"
	"reflect"
	"strings"

	applog "github.com/darkkaiser/webapp-server/pkg/log"
	"github.com/darkkaiser/webapp-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// validate 패키지 전역에서 공유하는 Validator 인스턴스입니다. (validator.Validate는 동시 사용에 안전합니다)
var validate = newValidator()

// newValidator 새로운 Validator 인스턴스를 생성하고 커스텀 유효성 검사 함수를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 구조체 필드명 대신 설정 키 이름(json 태그)을 보여주도록 설정합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "cors_origin", func(fl validator.FieldLevel) bool {
		return validation.ValidateCORSOrigin(fl.Field().String()) == nil
	})
	mustRegister(v, "mongodb_uri", func(fl validator.FieldLevel) bool {
		return validation.ValidateMongoURI(fl.Field().String()) == nil
	})
	mustRegister(v, "http_url", func(fl validator.FieldLevel) bool {
		return validation.ValidateHTTPURL(fl.Field().String()) == nil
	})
	mustRegister(v, "log_level", func(fl validator.FieldLevel) bool {
		_, err := applog.ParseLevel(fl.Field().String())
		return err == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
	}
}
