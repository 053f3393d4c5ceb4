package models

// Declared enum values for kind-specific fields. Unset enum fields take
// the schema default.
var (
	ConsulateTypes = []string{"Embassy", "Consulate General", "Consulate", "Honorary Consulate"}

	ShelterTypes = []string{"Emergency", "Transitional", "Family", "Youth", "Women", "Veterans", "Refugee", "General"}

	ICEResourceTypes = []string{"Detention Center", "Check-in Location", "Legal Resource", "Hotline", "Online Service"}
)

func floatPtr(f float64) *float64 { return &f }

func ConsulateSchema() *KindSchema {
	return &KindSchema{
		Kind: KindConsulate,
		Fields: map[string]FieldSpec{
			"country":       {Type: FieldString, Required: true},
			"consulateType": {Type: FieldEnum, Enum: ConsulateTypes, Default: "Consulate"},
			"services":      {Type: FieldStringList},
		},
	}
}

func LawyerSchema() *KindSchema {
	return &KindSchema{
		Kind: KindLawyer,
		Fields: map[string]FieldSpec{
			"firmName":        {Type: FieldString},
			"specializations": {Type: FieldStringList},
			"languages":       {Type: FieldStringList},
			"isProBono":       {Type: FieldBool, Default: false},
			"consultationFee": {Type: FieldString},
			"yearsExperience": {Type: FieldNumber, Min: floatPtr(0)},
		},
	}
}

func SurgeonSchema() *KindSchema {
	return &KindSchema{
		Kind: KindSurgeon,
		Fields: map[string]FieldSpec{
			"isUSCISApproved":   {Type: FieldBool, Default: true},
			"examTypes":         {Type: FieldStringList},
			"acceptsInsurance":  {Type: FieldBool, Default: false},
			"insuranceAccepted": {Type: FieldStringList},
			"examFee":           {Type: FieldString},
			"sameDayResults":    {Type: FieldBool, Default: false},
		},
	}
}

func ShelterSchema() *KindSchema {
	return &KindSchema{
		Kind: KindShelter,
		Fields: map[string]FieldSpec{
			"shelterType":   {Type: FieldEnum, Enum: ShelterTypes, Default: "General"},
			"capacity":      {Type: FieldNumber, Min: floatPtr(0)},
			"is24Hour":      {Type: FieldBool, Default: false},
			"isFree":        {Type: FieldBool, Default: true},
			"services":      {Type: FieldStringList},
			"eligibility":   {Type: FieldString},
			"isPetFriendly": {Type: FieldBool, Default: false},
		},
	}
}

func ICEResourceSchema() *KindSchema {
	return &KindSchema{
		Kind: KindICEResource,
		Fields: map[string]FieldSpec{
			"resourceType": {Type: FieldEnum, Enum: ICEResourceTypes, Required: true},
			"is24Hour":     {Type: FieldBool, Default: false},
			"services":     {Type: FieldStringList},
			"isAnonymous":  {Type: FieldBool, Default: false},
		},
	}
}

// AllSchemas returns the schemas for every kind the directory serves.
func AllSchemas() []*KindSchema {
	return []*KindSchema{
		ConsulateSchema(),
		LawyerSchema(),
		SurgeonSchema(),
		ShelterSchema(),
		ICEResourceSchema(),
	}
}
