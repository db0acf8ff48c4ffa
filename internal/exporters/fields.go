package exporters

import (
	"strings"

	"github.com/mrlokans/rolodex/internal/entities"
)

// workDomains mark an address as a work mailbox. Matched in order of
// the contact's email list; the first matching entry wins.
var workDomains = []string{".co.jp", ".ac.jp", ".go.jp", ".com"}

// cellDomains identify Japanese mobile carrier mailboxes.
var cellDomains = []string{"docomo.ne.jp", "i.softbank.jp", "ezweb.ne.jp", "auone.jp", "jp-t.ne.jp"}

// PhoneByLabel returns the display string of the first phone entry
// whose label exactly equals label, or "" when there is none.
func PhoneByLabel(contact entities.Contact, label string) string {
	for _, p := range contact.Phones {
		if p.Label == label {
			return p.Display()
		}
	}
	return ""
}

// AddressByLabel returns the display block of the first address entry
// whose label exactly equals label, or "" when there is none.
func AddressByLabel(contact entities.Contact, label string) string {
	for _, a := range contact.Addresses {
		if a.Label == label {
			return a.Display()
		}
	}
	return ""
}

// EmailBuckets holds the classified work, mobile-carrier and home
// addresses of one contact. Empty means no entry fell in that bucket.
type EmailBuckets struct {
	Work string
	Cell string
	Home string
}

// ClassifyEmails sorts an ordered email list into work, mobile-carrier
// and home buckets. The heuristic is best-effort and deliberately
// order-dependent: each pattern bucket takes the first matching entry,
// and home takes the first entry chosen for neither of the other two.
// An address can fall through to no bucket at all.
func ClassifyEmails(emails []string) EmailBuckets {
	buckets := EmailBuckets{
		Work: firstMatching(emails, workDomains),
		Cell: firstMatching(emails, cellDomains),
	}
	for _, email := range emails {
		if email != buckets.Work && email != buckets.Cell {
			buckets.Home = email
			break
		}
	}
	return buckets
}

func firstMatching(emails []string, domains []string) string {
	for _, email := range emails {
		for _, domain := range domains {
			if strings.Contains(email, domain) {
				return email
			}
		}
	}
	return ""
}

// SplitFurigana splits a phonetic-name string into its components:
// the first whitespace token is the phonetic last name, the remaining
// tokens concatenated without separator are the phonetic first name.
func SplitFurigana(furigana string) (last, first string) {
	tokens := strings.Fields(furigana)
	if len(tokens) == 0 {
		return "", ""
	}
	return tokens[0], strings.Join(tokens[1:], "")
}
