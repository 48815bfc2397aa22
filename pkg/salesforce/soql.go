package salesforce

import (
	"strings"
	"time"
)

var soqlEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// Quote renders s as a SOQL string literal.
func Quote(s string) string {
	return "'" + soqlEscaper.Replace(s) + "'"
}

// DateTimeLiteral renders t as an unquoted SOQL datetime literal.
func DateTimeLiteral(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
