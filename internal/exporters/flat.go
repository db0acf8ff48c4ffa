package exporters

// FieldKey names one slot of the flat export record. The key set is
// closed: every projection yields exactly the keys in FieldKeys,
// independent of which fields a particular contact populates.
type FieldKey string

const (
	KeyLastName      FieldKey = "lastname"
	KeyFirstName     FieldKey = "firstname"
	KeyNameFormat    FieldKey = "name-format"
	KeyOrganization  FieldKey = "organization"
	KeyFurigana      FieldKey = "furigana"
	KeyFuriganaLast  FieldKey = "furigana-last"
	KeyFuriganaFirst FieldKey = "furigana-first"
	KeyPhoneWork     FieldKey = "phone-work"
	KeyPhoneWork2    FieldKey = "phone-work2"
	KeyPhoneHome     FieldKey = "phone-home"
	KeyPhoneCell     FieldKey = "phone-cell"
	KeyEmailHome     FieldKey = "email-home"
	KeyEmailWork     FieldKey = "email-work"
	KeyEmailCell     FieldKey = "email-cell"
	KeyAddressHome   FieldKey = "address-home"
	KeyAddressWork   FieldKey = "address-work"
	KeyAddressJikka  FieldKey = "address-jikka"
	KeyNotes         FieldKey = "notes"
	KeyBirthday      FieldKey = "birthday"
	KeyNenga         FieldKey = "nenga"
	KeyWWW           FieldKey = "www"
)

// FieldKeys is the canonical key order of a flat record.
var FieldKeys = []FieldKey{
	KeyLastName,
	KeyFirstName,
	KeyNameFormat,
	KeyOrganization,
	KeyFurigana,
	KeyFuriganaLast,
	KeyFuriganaFirst,
	KeyPhoneWork,
	KeyPhoneWork2,
	KeyPhoneHome,
	KeyPhoneCell,
	KeyEmailHome,
	KeyEmailWork,
	KeyEmailCell,
	KeyAddressHome,
	KeyAddressWork,
	KeyAddressJikka,
	KeyNotes,
	KeyBirthday,
	KeyNenga,
	KeyWWW,
}

// FlatRecord is the normalized, fixed-key view of one contact. Every
// key in FieldKeys is present; an empty value means the source field
// is absent. A record is built once per contact, consumed by exactly
// one renderer call and never mutated after construction.
type FlatRecord map[FieldKey]string
