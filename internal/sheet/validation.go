package sheet

// RequiredField pairs a required house field with the message shown when it is empty.
type RequiredField struct {
	Field   HouseField
	Message string
}

// RequiredHouseFields lists the fields that must be filled in before
// the sheet can be shown to guests, in display order.
//
// The emergency contact is optional.
var RequiredHouseFields = []RequiredField{
	{Field: FieldWiFiName, Message: "WiFi name is required"},
	{Field: FieldWiFiPassword, Message: "WiFi password is required"},
	{Field: FieldFirstAidLocation, Message: "First aid kit location is required"},
}

// ValidateHouseInfo checks the required fields and returns a fresh error map
// holding one message per empty field. An empty map means the info is valid.
//
// Only the empty string counts as missing; whitespace is content.
func ValidateHouseInfo(h HouseInfo) ErrorMap {
	errs := make(ErrorMap)
	for _, req := range RequiredHouseFields {
		if h.Get(req.Field) == "" {
			errs[req.Field] = req.Message
		}
	}
	return errs
}
