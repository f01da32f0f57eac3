package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const offsetPrefix = "o"

// EncodeOffsetToken creates an opaque page token pointing at the given offset.
// An empty string is returned when there is nothing left to fetch (offset <= 0).
func EncodeOffsetToken(offset int) string {
	if offset <= 0 {
		return ""
	}
	return base64.URLEncoding.EncodeToString([]byte(offsetPrefix + "|" + strconv.Itoa(offset)))
}

// DecodeOffsetToken parses a page token produced by EncodeOffsetToken.
// An empty token decodes to offset 0.
func DecodeOffsetToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[0] != offsetPrefix {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	offset, err := strconv.Atoi(parts[1])
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid pagination token format (offset parse)")
	}
	return offset, nil
}

// NextOffsetToken returns the token for the page after one starting at offset that
// returned `got` rows out of a requested `limit`. A short page means the end was reached.
func NextOffsetToken(offset, limit, got int) string {
	if limit <= 0 || got < limit {
		return ""
	}
	return EncodeOffsetToken(offset + got)
}
