package model

// Guest is a person staying at the hotel.  Only the name is required;
// all identifying details are optional and may be filled in later at the
// front desk.  This struct corresponds to a row in the `guests` table.
//
// Fields:
//  ID          primary key identifier, assigned by the store on first save.
//  Name        full name of the guest (required, non-empty).
//  Document    identity document number, if recorded.
//  Birthdate   calendar date of birth (YYYY-MM-DD), if recorded.
//  Nationality nationality label, if recorded.
//  Address     postal address, if recorded.
type Guest struct {
	ID          uint64  `json:"id"`                    // guests.id
	Name        string  `json:"name"`                  // guests.name
	Document    *string `json:"document,omitempty"`    // guests.document (nullable)
	Birthdate   *string `json:"birthdate,omitempty"`   // guests.birthdate (nullable)
	Nationality *string `json:"nationality,omitempty"` // guests.nationality (nullable)
	Address     *string `json:"address,omitempty"`     // guests.address (nullable)
}
