package main

import (
	"resourcedir/internal/models"
)

func seedData() []*models.Resource {
	var records []*models.Resource
	records = append(records, consulates()...)
	records = append(records, lawyers()...)
	records = append(records, surgeons()...)
	records = append(records, shelters()...)
	records = append(records, iceResources()...)
	return records
}

func consulates() []*models.Resource {
	return []*models.Resource{
		{
			Kind:        models.KindConsulate,
			Name:        "San Francisco Consulate",
			Description: "Passport & Visa Services",
			Details:     "Mon-Fri: 9AM-5PM",
			Rating:      4.5,
			PriceInfo:   "Appointment required",
			Location:    models.NewGeoPoint(-122.4194, 37.7749),
			Address:     models.Address{City: "San Francisco", State: "CA", ZipCode: "94102"},
			Contact:     models.Contact{Phone: "(415) 555-0100", Email: "sf@consulate.gov"},
			Hours:       "Mon-Fri: 9AM-5PM",
			Attributes: map[string]interface{}{
				"country":       "USA",
				"consulateType": "Consulate General",
				"services":      []string{"Passport", "Visa", "Notary", "Citizenship"},
			},
		},
		{
			Kind:        models.KindConsulate,
			Name:        "Los Angeles Consulate",
			Description: "Full Service Consulate",
			Details:     "Mon-Fri: 8AM-4PM",
			Rating:      4.2,
			PriceInfo:   "Walk-in available",
			Location:    models.NewGeoPoint(-118.2437, 34.0522),
			Address:     models.Address{City: "Los Angeles", State: "CA", ZipCode: "90012"},
			Contact:     models.Contact{Phone: "(213) 555-0200", Email: "la@consulate.gov"},
			Hours:       "Mon-Fri: 8AM-4PM",
			Attributes: map[string]interface{}{
				"country":       "USA",
				"consulateType": "Consulate General",
				"services":      []string{"Passport", "Visa", "Notary"},
			},
		},
		{
			Kind:        models.KindConsulate,
			Name:        "New York Consulate",
			Description: "Emergency Services",
			Details:     "24/7 Hotline",
			Rating:      4.7,
			PriceInfo:   "Same-day processing",
			Location:    models.NewGeoPoint(-74.0060, 40.7128),
			Address:     models.Address{City: "New York", State: "NY", ZipCode: "10001"},
			Contact:     models.Contact{Phone: "(212) 555-0300", Email: "nyc@consulate.gov"},
			Hours:       "Mon-Fri: 9AM-6PM",
			Attributes: map[string]interface{}{
				"country":       "USA",
				"consulateType": "Embassy",
				"services":      []string{"Passport", "Visa", "Emergency Services"},
			},
		},
	}
}

func lawyers() []*models.Resource {
	return []*models.Resource{
		{
			Kind:        models.KindLawyer,
			Name:        "Immigration Law Group",
			Description: "Family & Employment Visas",
			Details:     "25+ years experience",
			Rating:      4.9,
			PriceInfo:   "Consultation $200",
			Location:    models.NewGeoPoint(-74.0060, 40.7128),
			Address:     models.Address{City: "New York", State: "NY", ZipCode: "10004"},
			Contact:     models.Contact{Phone: "(212) 555-1000", Email: "contact@ilg.com", Website: "www.ilg.com"},
			Hours:       "Mon-Fri: 9AM-6PM",
			Attributes: map[string]interface{}{
				"firmName":        "ILG Associates",
				"specializations": []string{"Family Immigration", "Employment Visas", "Green Cards"},
				"languages":       []string{"English", "Spanish", "Mandarin"},
				"consultationFee": "$200",
				"yearsExperience": 25,
			},
		},
		{
			Kind:        models.KindLawyer,
			Name:        "Global Visa Attorneys",
			Description: "Corporate Immigration",
			Details:     "Fortune 500 clients",
			Rating:      4.7,
			PriceInfo:   "Hourly $350",
			Location:    models.NewGeoPoint(-122.4194, 37.7749),
			Address:     models.Address{City: "San Francisco", State: "CA", ZipCode: "94105"},
			Contact:     models.Contact{Phone: "(415) 555-2000", Email: "info@gva.com", Website: "www.gva.com"},
			Hours:       "Mon-Fri: 8AM-7PM",
			Attributes: map[string]interface{}{
				"firmName":        "GVA LLP",
				"specializations": []string{"H-1B Visas", "L-1 Visas", "EB-5 Investment"},
				"languages":       []string{"English", "Hindi", "Portuguese"},
				"consultationFee": "$300",
				"yearsExperience": 15,
			},
		},
	}
}

func surgeons() []*models.Resource {
	return []*models.Resource{
		{
			Kind:        models.KindSurgeon,
			Name:        "Bay Area Medical Center",
			Description: "USCIS Approved Civil Surgeon",
			Details:     "Vaccinations included",
			Rating:      4.8,
			PriceInfo:   "Exam $250",
			Location:    models.NewGeoPoint(-122.4194, 37.7749),
			Address:     models.Address{City: "San Francisco", State: "CA", ZipCode: "94103"},
			Contact:     models.Contact{Phone: "(415) 555-3000", Email: "exams@baymed.com"},
			Hours:       "Mon-Sat: 8AM-6PM",
			Attributes: map[string]interface{}{
				"isUSCISApproved":   true,
				"examTypes":         []string{"I-693", "Vaccinations", "TB Test"},
				"acceptsInsurance":  true,
				"insuranceAccepted": []string{"Blue Cross", "Aetna", "Cigna"},
				"examFee":           "$250",
				"sameDayResults":    false,
			},
		},
		{
			Kind:        models.KindSurgeon,
			Name:        "New York Health Clinic",
			Description: "Immigration Physicals",
			Details:     "Same-day results available",
			Rating:      4.5,
			PriceInfo:   "Complete $300",
			Location:    models.NewGeoPoint(-74.0060, 40.7128),
			Address:     models.Address{City: "New York", State: "NY", ZipCode: "10016"},
			Contact:     models.Contact{Phone: "(212) 555-4000", Email: "physicals@nyhc.com"},
			Hours:       "Mon-Fri: 7AM-7PM",
			Attributes: map[string]interface{}{
				"isUSCISApproved":   true,
				"examTypes":         []string{"I-693", "Vaccinations"},
				"acceptsInsurance":  true,
				"insuranceAccepted": []string{"UnitedHealthcare", "EmblemHealth"},
				"examFee":           "$300",
				"sameDayResults":    true,
			},
		},
	}
}

func shelters() []*models.Resource {
	return []*models.Resource{
		{
			Kind:        models.KindShelter,
			Name:        "Hope Emergency Shelter",
			Description: "24/7 Emergency Housing",
			Details:     "Hot meals provided",
			Rating:      4.6,
			PriceInfo:   "Free stay",
			Location:    models.NewGeoPoint(-74.0060, 40.7128),
			Address:     models.Address{City: "New York", State: "NY", ZipCode: "10002"},
			Contact:     models.Contact{Phone: "(212) 555-5000", Email: "help@hopeshelter.org"},
			Hours:       "24/7",
			Attributes: map[string]interface{}{
				"shelterType": "Emergency",
				"capacity":    120,
				"is24Hour":    true,
				"isFree":      true,
				"services":    []string{"Meals", "Showers", "Laundry", "Case Management"},
				"eligibility": "Open to all in need",
			},
		},
		{
			Kind:        models.KindShelter,
			Name:        "Safe Haven Center",
			Description: "Family Shelter",
			Details:     "Children welcome",
			Rating:      4.4,
			PriceInfo:   "No cost accommodation",
			Location:    models.NewGeoPoint(-118.2437, 34.0522),
			Address:     models.Address{City: "Los Angeles", State: "CA", ZipCode: "90013"},
			Contact:     models.Contact{Phone: "(213) 555-6000", Email: "info@safehaven.la"},
			Hours:       "24/7",
			Attributes: map[string]interface{}{
				"shelterType": "Family",
				"capacity":    80,
				"is24Hour":    true,
				"isFree":      true,
				"services":    []string{"Meals", "Childcare", "Counseling", "Job Training"},
				"eligibility": "Families with children",
			},
		},
	}
}

func iceResources() []*models.Resource {
	return []*models.Resource{
		{
			Kind:        models.KindICEResource,
			Name:        "ICE Case Status Online",
			Description: "Check Case Status",
			Details:     "Real-time updates",
			Rating:      4.5,
			PriceInfo:   "Free service",
			Location:    models.NewGeoPoint(-77.0369, 38.9072),
			Address:     models.Address{City: "Washington", State: "DC", ZipCode: "20001"},
			Contact:     models.Contact{Phone: "1-800-375-5283", Website: "www.uscis.gov"},
			Hours:       "24/7 Online",
			Attributes: map[string]interface{}{
				"resourceType": "Online Service",
				"is24Hour":     true,
				"services":     []string{"Case Status Check", "Application Tracking"},
				"isAnonymous":  false,
			},
		},
		{
			Kind:        models.KindICEResource,
			Name:        "Detention Locator",
			Description: "Find Detainees",
			Details:     "Nationwide search",
			Rating:      4.3,
			PriceInfo:   "24/7 hotline",
			Location:    models.NewGeoPoint(-77.0369, 38.9072),
			Address:     models.Address{City: "Washington", State: "DC", ZipCode: "20001"},
			Contact:     models.Contact{Phone: "1-877-236-1260"},
			Hours:       "24/7",
			Attributes: map[string]interface{}{
				"resourceType": "Hotline",
				"is24Hour":     true,
				"services":     []string{"Detainee Location", "Facility Information"},
				"isAnonymous":  true,
			},
		},
	}
}
