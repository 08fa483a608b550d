package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	yearFirstPattern  = regexp.MustCompile(`^(?P<year>\d{4})-(?P<month>\d{1,2})$`)
	monthFirstPattern = regexp.MustCompile(`^(?P<month>\d{1,2})(?:[-/](?P<year>\d{4}))?$`)
)

// ParseDateArg lê o argumento posicional de data: YYYY-MM, MM, MM/YYYY ou MM-YYYY.
// Ano ausente volta como 0 (ano corrente). Mês 0 é lido como janeiro.
func ParseDateArg(value string) (year, month int, err error) {
	value = strings.TrimSpace(value)

	match := yearFirstPattern.FindStringSubmatch(value)
	pattern := yearFirstPattern
	if match == nil {
		match = monthFirstPattern.FindStringSubmatch(value)
		pattern = monthFirstPattern
	}
	if match == nil {
		return 0, 0, fmt.Errorf("invalid date format %q: use YYYY-MM, MM, MM/YYYY or MM-YYYY", value)
	}

	if s := match[pattern.SubexpIndex("year")]; s != "" {
		year, _ = strconv.Atoi(s)
	}
	month, _ = strconv.Atoi(match[pattern.SubexpIndex("month")])
	if month == 0 {
		month = 1
	}

	return year, month, nil
}
