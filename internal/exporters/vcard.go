package exporters

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// VCard21Renderer emits vCard 2.1 blocks. Name, phonetic-name,
// organization and address values are tagged CHARSET=UTF-8 with
// quoted-printable transfer encoding, as older Japanese phones and
// mailers expect.
type VCard21Renderer struct{}

func (VCard21Renderer) Format() string { return "vcard21" }

func (VCard21Renderer) Render(record FlatRecord) (string, error) {
	var b strings.Builder

	b.WriteString("BEGIN:VCARD\n")
	b.WriteString("VERSION:2.1\n")
	fmt.Fprintf(&b, "N;CHARSET=UTF-8;ENCODING=QUOTED-PRINTABLE:%s;%s\n",
		encodeQuotedPrintable(record[KeyLastName]),
		encodeQuotedPrintable(record[KeyFirstName]))
	fmt.Fprintf(&b, "FN;CHARSET=UTF-8;ENCODING=QUOTED-PRINTABLE:%s\n",
		encodeQuotedPrintable(formattedName(record)))

	// Phonetic names are NFKC-normalized here and nowhere else, so
	// that comparison and sort semantics elsewhere stay untouched.
	if v := record[KeyFuriganaLast]; v != "" {
		fmt.Fprintf(&b, "X-PHONETIC-LAST-NAME;CHARSET=UTF-8;ENCODING=QUOTED-PRINTABLE:%s\n",
			encodeQuotedPrintable(norm.NFKC.String(v)))
	}
	if v := record[KeyFuriganaFirst]; v != "" {
		fmt.Fprintf(&b, "X-PHONETIC-FIRST-NAME;CHARSET=UTF-8;ENCODING=QUOTED-PRINTABLE:%s\n",
			encodeQuotedPrintable(norm.NFKC.String(v)))
	}
	if v := record[KeyOrganization]; v != "" {
		fmt.Fprintf(&b, "ORG;CHARSET=UTF-8;ENCODING=QUOTED-PRINTABLE:%s\n",
			encodeQuotedPrintable(v))
	}

	if v := record[KeyPhoneWork]; v != "" {
		fmt.Fprintf(&b, "TEL;WORK;VOICE:%s\n", stripHyphens(v))
	}
	if v := record[KeyPhoneWork2]; v != "" {
		fmt.Fprintf(&b, "TEL;WORK;VOICE:%s\n", stripHyphens(v))
	}
	if v := record[KeyPhoneHome]; v != "" {
		fmt.Fprintf(&b, "TEL;HOME;VOICE:%s\n", stripHyphens(v))
	}
	if v := record[KeyPhoneCell]; v != "" {
		fmt.Fprintf(&b, "TEL;CELL;VOICE:%s\n", stripHyphens(v))
	}

	if v := record[KeyEmailHome]; v != "" {
		fmt.Fprintf(&b, "EMAIL;INTERNET;HOME:%s\n", v)
	}
	if v := record[KeyEmailWork]; v != "" {
		fmt.Fprintf(&b, "EMAIL;INTERNET;WORK:%s\n", v)
	}
	if v := record[KeyEmailCell]; v != "" {
		fmt.Fprintf(&b, "EMAIL;INTERNET;CELL:%s\n", v)
	}

	if v := record[KeyAddressHome]; v != "" {
		fmt.Fprintf(&b, "ADR;HOME;CHARSET=UTF-8;ENCODING=QUOTED-PRINTABLE:;;%s\n",
			encodeQuotedPrintable(v))
	}
	if v := record[KeyAddressWork]; v != "" {
		fmt.Fprintf(&b, "ADR;WORK;CHARSET=UTF-8;ENCODING=QUOTED-PRINTABLE:;;%s\n",
			encodeQuotedPrintable(v))
	}

	if v := record[KeyWWW]; v != "" {
		fmt.Fprintf(&b, "URL:%s\n", v)
	}
	if v := record[KeyBirthday]; v != "" {
		fmt.Fprintf(&b, "BDAY:%s\n", v)
	}

	b.WriteString("X-CLASS:PUBLIC\n")
	b.WriteString("END:VCARD\n")

	return b.String(), nil
}

// VCard30Renderer emits vCard 3.0 blocks: same field set and
// conditional emission as 2.1, but raw UTF-8 values without
// charset/encoding parameters and TYPE= parameter syntax.
type VCard30Renderer struct{}

func (VCard30Renderer) Format() string { return "vcard30" }

func (VCard30Renderer) Render(record FlatRecord) (string, error) {
	var b strings.Builder

	b.WriteString("BEGIN:VCARD\n")
	b.WriteString("VERSION:3.0\n")
	fmt.Fprintf(&b, "N:%s;%s\n", record[KeyLastName], record[KeyFirstName])
	fmt.Fprintf(&b, "FN:%s\n", formattedName(record))

	if v := record[KeyFuriganaLast]; v != "" {
		fmt.Fprintf(&b, "X-PHONETIC-LAST-NAME:%s\n", norm.NFKC.String(v))
	}
	if v := record[KeyFuriganaFirst]; v != "" {
		fmt.Fprintf(&b, "X-PHONETIC-FIRST-NAME:%s\n", norm.NFKC.String(v))
	}
	if v := record[KeyOrganization]; v != "" {
		fmt.Fprintf(&b, "ORG:%s\n", v)
	}

	if v := record[KeyPhoneWork]; v != "" {
		fmt.Fprintf(&b, "TEL;TYPE=WORK,VOICE:%s\n", stripHyphens(v))
	}
	if v := record[KeyPhoneWork2]; v != "" {
		fmt.Fprintf(&b, "TEL;TYPE=WORK,VOICE:%s\n", stripHyphens(v))
	}
	if v := record[KeyPhoneHome]; v != "" {
		fmt.Fprintf(&b, "TEL;TYPE=HOME,VOICE:%s\n", stripHyphens(v))
	}
	if v := record[KeyPhoneCell]; v != "" {
		fmt.Fprintf(&b, "TEL;TYPE=CELL,VOICE:%s\n", stripHyphens(v))
	}

	if v := record[KeyEmailHome]; v != "" {
		fmt.Fprintf(&b, "EMAIL;TYPE=INTERNET,HOME:%s\n", v)
	}
	if v := record[KeyEmailWork]; v != "" {
		fmt.Fprintf(&b, "EMAIL;TYPE=INTERNET,WORK:%s\n", v)
	}
	if v := record[KeyEmailCell]; v != "" {
		fmt.Fprintf(&b, "EMAIL;TYPE=INTERNET,CELL:%s\n", v)
	}

	if v := record[KeyAddressHome]; v != "" {
		fmt.Fprintf(&b, "ADR;TYPE=HOME:;;%s\n", escapeNewlines(v))
	}
	if v := record[KeyAddressWork]; v != "" {
		fmt.Fprintf(&b, "ADR;TYPE=WORK:;;%s\n", escapeNewlines(v))
	}

	if v := record[KeyWWW]; v != "" {
		fmt.Fprintf(&b, "URL:%s\n", v)
	}
	if v := record[KeyBirthday]; v != "" {
		fmt.Fprintf(&b, "BDAY:%s\n", v)
	}

	b.WriteString("X-CLASS:PUBLIC\n")
	b.WriteString("END:VCARD\n")

	return b.String(), nil
}

// formattedName applies the name-format law: "last-first" puts the
// last name before the first, anything else the other way around.
func formattedName(record FlatRecord) string {
	if record[KeyNameFormat] == "last-first" {
		return record[KeyLastName] + " " + record[KeyFirstName]
	}
	return record[KeyFirstName] + " " + record[KeyLastName]
}

// stripHyphens removes the grouping hyphens of a phone number for TEL
// emission.
func stripHyphens(number string) string {
	return strings.ReplaceAll(number, "-", "")
}

// escapeNewlines folds a multi-line value into one vCard 3.0 line.
func escapeNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", "\\n")
}

const upperhex = "0123456789ABCDEF"

// encodeQuotedPrintable encodes s as a quoted-printable vCard 2.1
// property value. mime/quotedprintable is built for MIME bodies: it
// treats newlines as hard line breaks and inserts soft line breaks at
// 76 columns, both of which corrupt a single-line property value.
// Here newlines become =0A and nothing is ever wrapped.
func encodeQuotedPrintable(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '=' || c == ';' || c < ' ' || c > '~' {
			b.WriteByte('=')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0f])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}
