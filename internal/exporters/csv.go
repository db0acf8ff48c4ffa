package exporters

import (
	"fmt"
	"strings"
)

// CSVRenderer emits one fixed-order line per contact for the greeting
// card address list:
//
//	lastname firstname,postal,line2,line3
//
// The field order and separators are not configurable; missing
// components render as empty slots so the comma count stays fixed.
type CSVRenderer struct{}

func (CSVRenderer) Format() string { return "csv" }

func (CSVRenderer) Render(record FlatRecord) (string, error) {
	postal, line2, line3 := splitAddressBlock(record[KeyAddressHome])
	return fmt.Sprintf("%s %s,%s,%s,%s\n",
		record[KeyLastName], record[KeyFirstName], postal, line2, line3), nil
}

// splitAddressBlock decomposes a multi-line address block into the
// postal code (first line, leading 〒 mark stripped) and the two
// following address lines.
func splitAddressBlock(block string) (postal, line2, line3 string) {
	if block == "" {
		return "", "", ""
	}
	lines := strings.Split(block, "\n")
	postal = strings.TrimPrefix(lines[0], "〒")
	if len(lines) > 1 {
		line2 = lines[1]
	}
	if len(lines) > 2 {
		line3 = lines[2]
	}
	return postal, line2, line3
}
