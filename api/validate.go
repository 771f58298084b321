package api

import "regexp"

var udidPattern = regexp.MustCompile(`(?i)^[0-9a-f-]+$`)

// IsValidUDID reports whether udid is made of hex digits and dashes only.
func IsValidUDID(udid string) bool {
	return udidPattern.MatchString(udid)
}

// IsValidID reports whether n is a non-negative id within MaxSafeInteger.
func IsValidID(n int) bool {
	return n >= 0 && int64(n) <= MaxSafeInteger
}

func checkUDID(op, udid string) error {
	if !IsValidUDID(udid) {
		return invalid(op, "udid", udid, ErrInvalidUDID)
	}
	return nil
}

func checkID(op, field string, id int) error {
	if !IsValidID(id) {
		return invalid(op, field, id, ErrInvalidID)
	}
	return nil
}

func checkOptionalID(op, field string, id *int) error {
	if id == nil {
		return nil
	}
	return checkID(op, field, *id)
}

func checkIDs(op, field string, ids []int) error {
	for _, id := range ids {
		if err := checkID(op, field, id); err != nil {
			return err
		}
	}
	return nil
}
