package registry

import (
	"strconv"
	"strings"
)

// Format substitutes positional placeholders %1..%N in template with the
// corresponding argument, in increasing index order. Only the first
// occurrence of each placeholder is replaced. A placeholder with no matching
// argument is left intact, and surplus arguments are ignored. Arguments are
// inserted verbatim with no escaping. Pure function.
func Format(template string, args []string) string {
	message := template

	for i, arg := range args {
		placeholder := "%" + strconv.Itoa(i+1)

		idx := strings.Index(message, placeholder)
		if idx < 0 {
			continue
		}

		message = message[:idx] + arg + message[idx+len(placeholder):]
	}

	return message
}
