package mprhandler

import (
	"fmt"
	"strconv"
	"strings"
)

// nextMPRNumber issues the next requisition number in the YYYY-NNNN
// format. The counter restarts every year. lastNumber is the highest
// number issued so far for the year, empty when none.
func nextMPRNumber(lastNumber string, year int) string {
	prefix := fmt.Sprintf("%d-", year)
	seq := 1
	if strings.HasPrefix(lastNumber, prefix) {
		if n, err := strconv.Atoi(strings.TrimPrefix(lastNumber, prefix)); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%04d", prefix, seq)
}
