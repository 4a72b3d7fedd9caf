package parser

import (
	"strings"
	"time"
	"unicode"

	"github.com/FlaviusPintican/radiology-timetable/internal/model"
)

// Tokenize 去除全部空白后按逗号切分，丢弃空 token
// 偏好文本与年假文本共用同一套切分规则
func Tokenize(raw string) []string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	parts := strings.Split(stripped, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// splitToken 拆出 SPEC(DIRECTIVE) 两段，指令去掉收尾括号
func splitToken(tok string) (spec, directive string, ok bool) {
	i := strings.Index(tok, "(")
	if i <= 0 {
		return "", "", false
	}
	directive = strings.TrimSuffix(tok[i+1:], ")")
	if directive == "" {
		return "", "", false
	}
	return tok[:i], directive, true
}

// parseDate ISO 日期字面量
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
