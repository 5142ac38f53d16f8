package objects

import (
	"fmt"
	"strings"

	"github.com/ib823/sapconnect-sub002/core"
)

const (
	roleCustomer = "FLCU01"
	roleSupplier = "FLVN01"
)

// businessPartnerObject deduplicates partners that exist both as customer
// and supplier in the source: records sharing the same full name and city
// collapse into one partner carrying both roles.
type businessPartnerObject struct {
	object
}

func (o *businessPartnerObject) TransformHook(records []core.Record) (core.TransformOutcome, error) {
	merged := make([]core.Record, 0, len(records))
	index := make(map[string]int, len(records))
	for _, record := range records {
		key := partnerMergeKey(record)
		if key == "" {
			merged = append(merged, record)
			continue
		}
		at, seen := index[key]
		if !seen {
			record["_roles"] = []string{partnerRole(record)}
			index[key] = len(merged)
			merged = append(merged, record)
			continue
		}
		existing := merged[at]
		for field, value := range record {
			if field == "_roles" || field == "Role" {
				continue
			}
			if current, ok := existing[field]; !ok || isBlank(current) {
				existing[field] = value
			}
		}
		existing["_roles"] = appendRole(existing["_roles"], partnerRole(record))
	}
	return core.TransformOutcome{
		Records: merged,
		Extra:   map[string]any{"merged": len(records) - len(merged)},
	}, nil
}

func partnerMergeKey(record core.Record) string {
	name := strings.ToUpper(strings.TrimSpace(fmt.Sprint(record["BusinessPartnerFullName"])))
	city := strings.ToUpper(strings.TrimSpace(fmt.Sprint(record["CityName"])))
	if name == "" || name == "<nil>" {
		return ""
	}
	return name + "\x1f" + city
}

func partnerRole(record core.Record) string {
	role := strings.TrimSpace(fmt.Sprint(record["Role"]))
	if role == "" || role == "<nil>" {
		return roleCustomer
	}
	return role
}

func appendRole(current any, role string) []string {
	roles, _ := current.([]string)
	for _, existing := range roles {
		if existing == role {
			return roles
		}
	}
	return append(roles, role)
}

func isBlank(value any) bool {
	if value == nil {
		return true
	}
	text, ok := value.(string)
	return ok && strings.TrimSpace(text) == ""
}

func newBusinessPartner() core.MigrationObject {
	return &businessPartnerObject{object{decl: declaration{
		id:    "BusinessPartner",
		name:  "Business Partner",
		table: "tccom100",
		fields: []string{
			"bpid", "nama", "namb", "seak", "ccty", "cste", "ccit", "pstc",
			"strt", "hono", "telp", "telx", "mail", "crdt", "lang", "fovn",
			"ccur", "cpay", "stat", "brol", "indu", "lfrm", "dtyp", "webs",
		},
		mappings: []core.FieldMappingRule{
			{Source: "bpid", Target: "BusinessPartner", Convert: core.ConverterPadLeft10},
			{Source: "nama", Target: "BusinessPartnerFullName"},
			{Source: "namb", Target: "BusinessPartnerName2"},
			{Source: "seak", Target: "SearchTerm1", Convert: core.ConverterToUpperCase},
			{Source: "ccty", Target: "Country", Convert: core.ConverterToUpperCase},
			{Source: "cste", Target: "Region"},
			{Source: "ccit", Target: "CityName"},
			{Source: "pstc", Target: "PostalCode"},
			{Source: "strt", Target: "StreetName"},
			{Source: "hono", Target: "HouseNumber"},
			{Source: "telp", Target: "PhoneNumber"},
			{Source: "telx", Target: "FaxNumber"},
			{Source: "mail", Target: "EmailAddress"},
			{Source: "crdt", Target: "CreationDate", Convert: core.ConverterToDate},
			{Source: "lang", Target: "Language", ValueMap: map[string]any{
				"en": "EN", "de": "DE", "fr": "FR", "nl": "NL", "ja": "JA",
			}, Default: "EN"},
			{Source: "fovn", Target: "VATRegistration", Convert: core.ConverterToUpperCase},
			{Source: "ccur", Target: "Currency", Convert: core.ConverterToUpperCase},
			{Source: "cpay", Target: "PaymentTerms", ValueMap: map[string]any{
				"30": "NT30", "60": "NT60", "00": "NT00", "45": "NT45",
			}, Default: "NT30"},
			{Source: "stat", Target: "IsMarkedForDeletion", Convert: core.ConverterBoolYN},
			{Source: "brol", Target: "Role"},
			{Source: "indu", Target: "Industry"},
			{Source: "lfrm", Target: "LegalForm"},
			{Source: "dtyp", Target: "DataOriginType"},
			{Source: "webs", Target: "URIAddress"},
			{Target: "BusinessPartnerCategory", Default: "2"},
			{Target: "AuthorizationGroup", Default: "MIGR"},
			{Target: "BusinessPartnerGrouping", Default: "BP02"},
		},
		checks: core.QualityChecks{
			Required: []string{"BusinessPartnerFullName", "Country"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"BusinessPartnerFullName", "CityName"},
			},
			FuzzyDuplicate: &core.FuzzyDuplicateCheck{
				Keys:      []string{"BusinessPartnerFullName"},
				Threshold: 0.85,
			},
		},
		mock: businessPartnerFixture,
	}}}
}

// businessPartnerFixture holds 50 customers, 30 distinct vendors, and 5
// vendors that collide with the first 5 customers on name and city. The
// merge hook therefore emits 80 partners, 5 of them dual-role.
func businessPartnerFixture() []core.Record {
	records := make([]core.Record, 0, 85)
	for i := 0; i < 50; i++ {
		records = append(records, partnerSource(i, "C", roleCustomer, i))
	}
	for i := 0; i < 30; i++ {
		records = append(records, partnerSource(50+i, "V", roleSupplier, 50+i))
	}
	for i := 0; i < 5; i++ {
		// Same name and city as customer i, vendor id and role.
		collision := partnerSource(80+i, "V", roleSupplier, i)
		collision["mail"] = ""
		records = append(records, collision)
	}
	return records
}

func partnerSource(id int, idPrefix, role string, identity int) core.Record {
	return core.Record{
		"bpid": seqID(idPrefix, 6, 1000+id),
		"nama": fmt.Sprintf("Partner Trading %03d", identity),
		"namb": pick([]string{"Holding", "", "Group", ""}, identity),
		"seak": fmt.Sprintf("ptr%03d", identity),
		"ccty": strings.ToLower(pick(countryCodes, identity)),
		"cste": pick(regionCodes, identity),
		"ccit": pick(cityNames, identity),
		"pstc": seqID("", 5, 10000+identity*7),
		"strt": fmt.Sprintf("Industriestrasse %d", 1+identity%90),
		"hono": fmt.Sprintf("%d", 1+identity%120),
		"telp": fmt.Sprintf("+49 40 %06d", 100000+identity*13),
		"telx": "",
		"mail": fmt.Sprintf("contact%03d@partner.example", identity),
		"crdt": dateYYYYMMDD(2015, identity),
		"lang": pick([]string{"en", "de", "fr", "nl", "ja"}, identity),
		"fovn": fmt.Sprintf("de%09d", 100000000+identity),
		"ccur": pick(currencyCodes, identity),
		"cpay": pick([]string{"30", "60", "00", "45"}, identity),
		"stat": boolAlternating(identity, 17),
		"brol": role,
		"indu": pick([]string{"MFG", "TRAD", "SERV"}, identity),
		"lfrm": pick([]string{"GmbH", "Ltd", "BV", "AB", "KK"}, identity),
		"dtyp": "MIG",
		"webs": fmt.Sprintf("https://partner%03d.example", identity),
	}
}

func newCustomerMaster() core.MigrationObject {
	return &object{decl: declaration{
		id:    "CustomerMaster",
		name:  "Customer Master",
		table: "OCUSMA",
		fields: []string{
			"OKCUNO", "OKCUNM", "OKCUA1", "OKCUA2", "OKTOWN", "OKECAR", "OKPONO",
			"OKCSCD", "OKPHNO", "OKTFNO", "OKMAIL", "OKCUCD", "OKTEPY", "OKSMCD",
			"OKVTCD", "OKCRLM", "OKRGDT", "OKSTAT", "OKBLCD", "OKDISY", "OKORTP",
			"OKCFC1", "OKCFC2", "OKPWMT", "OKINRC",
		},
		mappings: []core.FieldMappingRule{
			{Source: "OKCUNO", Target: "Customer", Convert: core.ConverterPadLeft10},
			{Source: "OKCUNM", Target: "CustomerName"},
			{Source: "OKCUA1", Target: "StreetName"},
			{Source: "OKCUA2", Target: "StreetSuffix"},
			{Source: "OKTOWN", Target: "CityName"},
			{Source: "OKECAR", Target: "Region"},
			{Source: "OKPONO", Target: "PostalCode"},
			{Source: "OKCSCD", Target: "Country", Convert: core.ConverterToUpperCase},
			{Source: "OKPHNO", Target: "PhoneNumber"},
			{Source: "OKTFNO", Target: "FaxNumber"},
			{Source: "OKMAIL", Target: "EmailAddress"},
			{Source: "OKCUCD", Target: "Currency", Convert: core.ConverterToUpperCase},
			{Source: "OKTEPY", Target: "PaymentTerms", ValueMap: map[string]any{
				"N30": "NT30", "N60": "NT60", "N00": "NT00", "N45": "NT45", "N90": "NT90",
			}, Default: "NT30"},
			{Source: "OKSMCD", Target: "SalesDistrict"},
			{Source: "OKVTCD", Target: "TaxClassification"},
			{Source: "OKCRLM", Target: "CreditLimitAmount", Convert: core.ConverterToDecimal},
			{Source: "OKRGDT", Target: "CreationDate", Convert: core.ConverterToDate},
			{Source: "OKSTAT", Target: "CustomerAccountGroup", ValueMap: map[string]any{
				"20": "KUNA", "90": "KUNX",
			}, Default: "KUNA"},
			{Source: "OKBLCD", Target: "IsOrderBlocked", Convert: core.ConverterBoolYN},
			{Source: "OKDISY", Target: "DeliveryPriority", Convert: core.ConverterToInteger},
			{Source: "OKORTP", Target: "OrderCombinationAllowed", Convert: core.ConverterBoolYN},
			{Source: "OKCFC1", Target: "CustomerClassification"},
			{Source: "OKCFC2", Target: "IndustryCode"},
			{Source: "OKPWMT", Target: "PartialDeliveryAllowed", Convert: core.ConverterBoolYN},
			{Source: "OKINRC", Target: "Incoterms"},
			{Target: "ReconciliationAccount", Default: "0000140000"},
			{Target: "SortKey", Default: "001"},
		},
		checks: core.QualityChecks{
			Required: []string{"Customer", "CustomerName", "Country"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"CustomerName", "CityName"},
			},
			Range: []core.RangeCheck{
				{Field: "CreditLimitAmount", Min: 0, Max: 10_000_000},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 40)
			for i := 0; i < 40; i++ {
				records = append(records, core.Record{
					"OKCUNO": seqID("CUS", 5, 100+i),
					"OKCUNM": fmt.Sprintf("Retail Chain %03d", i),
					"OKCUA1": fmt.Sprintf("Market Street %d", 1+i%60),
					"OKCUA2": "",
					"OKTOWN": pick(cityNames, i),
					"OKECAR": pick(regionCodes, i),
					"OKPONO": seqID("", 5, 20000+i*3),
					"OKCSCD": strings.ToLower(pick(countryCodes, i)),
					"OKPHNO": fmt.Sprintf("+46 8 %06d", 200000+i*11),
					"OKTFNO": "",
					"OKMAIL": fmt.Sprintf("orders%03d@retail.example", i),
					"OKCUCD": pick(currencyCodes, i),
					"OKTEPY": pick([]string{"N30", "N60", "N00", "N45", "N90"}, i),
					"OKSMCD": pick([]string{"NORTH", "SOUTH", "EAST", "WEST"}, i),
					"OKVTCD": pick([]string{"1", "0"}, i),
					"OKCRLM": cents(5000, 750.25, i),
					"OKRGDT": dateYYYYMMDD(2018, i),
					"OKSTAT": pick([]string{"20", "20", "20", "90"}, i),
					"OKBLCD": boolAlternating(i, 9),
					"OKDISY": fmt.Sprintf("%d", 1+i%5),
					"OKORTP": boolAlternating(i, 2),
					"OKCFC1": pick([]string{"A", "B", "C"}, i),
					"OKCFC2": pick([]string{"RETL", "WHSL", "ECOM"}, i),
					"OKPWMT": boolAlternating(i, 3),
					"OKINRC": pick([]string{"EXW", "FOB", "CIF", "DAP"}, i),
				})
			}
			return records
		},
	}}
}

func newSupplierMaster() core.MigrationObject {
	return &object{decl: declaration{
		id:    "SupplierMaster",
		name:  "Supplier Master",
		table: "CIDMAS",
		fields: []string{
			"IDSUNO", "IDSUNM", "IDADR1", "IDTOWN", "IDECAR", "IDPONO", "IDCSCD",
			"IDPHNO", "IDMAIL", "IDCUCD", "IDTEPY", "IDVTCD", "IDRGDT", "IDSTAT",
			"IDBLCD", "IDSUCL", "IDINRC", "IDBKID", "IDBKAC", "IDSWIF", "IDMODE",
			"IDCFC1", "IDLEAD", "IDMINP", "IDQACD",
		},
		mappings: []core.FieldMappingRule{
			{Source: "IDSUNO", Target: "Supplier", Convert: core.ConverterPadLeft10},
			{Source: "IDSUNM", Target: "SupplierName"},
			{Source: "IDADR1", Target: "StreetName"},
			{Source: "IDTOWN", Target: "CityName"},
			{Source: "IDECAR", Target: "Region"},
			{Source: "IDPONO", Target: "PostalCode"},
			{Source: "IDCSCD", Target: "Country", Convert: core.ConverterToUpperCase},
			{Source: "IDPHNO", Target: "PhoneNumber"},
			{Source: "IDMAIL", Target: "EmailAddress"},
			{Source: "IDCUCD", Target: "Currency", Convert: core.ConverterToUpperCase},
			{Source: "IDTEPY", Target: "PaymentTerms", ValueMap: map[string]any{
				"N30": "NT30", "N60": "NT60", "N00": "NT00", "N45": "NT45",
			}, Default: "NT30"},
			{Source: "IDVTCD", Target: "VATRegistration", Convert: core.ConverterToUpperCase},
			{Source: "IDRGDT", Target: "CreationDate", Convert: core.ConverterToDate},
			{Source: "IDSTAT", Target: "SupplierAccountGroup", ValueMap: map[string]any{
				"20": "LIEF", "90": "LIEX",
			}, Default: "LIEF"},
			{Source: "IDBLCD", Target: "IsPostingBlocked", Convert: core.ConverterBoolYN},
			{Source: "IDSUCL", Target: "SupplierClassification"},
			{Source: "IDINRC", Target: "Incoterms"},
			{Source: "IDBKID", Target: "BankKey"},
			{Source: "IDBKAC", Target: "BankAccount"},
			{Source: "IDSWIF", Target: "SWIFTCode", Convert: core.ConverterToUpperCase},
			{Source: "IDMODE", Target: "ShippingCondition"},
			{Source: "IDCFC1", Target: "IndustryCode"},
			{Source: "IDLEAD", Target: "PlannedDeliveryDays", Convert: core.ConverterToInteger},
			{Source: "IDMINP", Target: "MinimumOrderValue", Convert: core.ConverterToDecimal},
			{Source: "IDQACD", Target: "QualitySystemCertified", Convert: core.ConverterBoolYN},
			{Target: "ReconciliationAccount", Default: "0000160000"},
			{Target: "SchemaGroup", Default: "01"},
		},
		checks: core.QualityChecks{
			Required: []string{"Supplier", "SupplierName", "Country"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"SupplierName", "CityName"},
			},
			Range: []core.RangeCheck{
				{Field: "PlannedDeliveryDays", Min: 0, Max: 365},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 35)
			for i := 0; i < 35; i++ {
				records = append(records, core.Record{
					"IDSUNO": seqID("SUP", 5, 200+i),
					"IDSUNM": fmt.Sprintf("Component Works %03d", i),
					"IDADR1": fmt.Sprintf("Werkstrasse %d", 2+i%45),
					"IDTOWN": pick(cityNames, i+3),
					"IDECAR": pick(regionCodes, i+3),
					"IDPONO": seqID("", 5, 30000+i*5),
					"IDCSCD": strings.ToLower(pick(countryCodes, i+2)),
					"IDPHNO": fmt.Sprintf("+81 6 %06d", 300000+i*17),
					"IDMAIL": fmt.Sprintf("sales%03d@works.example", i),
					"IDCUCD": pick(currencyCodes, i+1),
					"IDTEPY": pick([]string{"N30", "N60", "N45"}, i),
					"IDVTCD": fmt.Sprintf("jp%08d", 10000000+i),
					"IDRGDT": dateYYYYMMDD(2016, i*2),
					"IDSTAT": pick([]string{"20", "20", "90"}, i),
					"IDBLCD": boolAlternating(i, 11),
					"IDSUCL": pick([]string{"A", "B", "C"}, i),
					"IDINRC": pick([]string{"FCA", "FOB", "DDP"}, i),
					"IDBKID": seqID("BK", 4, 10+i%6),
					"IDBKAC": seqID("", 10, 5000000+i*31),
					"IDSWIF": "smbcjpjt",
					"IDMODE": pick([]string{"01", "02"}, i),
					"IDCFC1": pick([]string{"MECH", "ELEC", "CHEM"}, i),
					"IDLEAD": fmt.Sprintf("%d", 3+i%28),
					"IDMINP": cents(250, 45.5, i),
					"IDQACD": boolAlternating(i, 2),
				})
			}
			return records
		},
	}}
}

func newBankMaster() core.MigrationObject {
	return &object{decl: declaration{
		id:    "BankMaster",
		name:  "Bank Master",
		table: "tfcmg010",
		fields: []string{
			"bank", "desc", "ccty", "ccit", "strt", "swif", "bgro",
			"natb", "crdt", "stat", "cont", "telp", "mail",
		},
		mappings: []core.FieldMappingRule{
			{Source: "bank", Target: "BankKey", Convert: core.ConverterPadLeft10},
			{Source: "desc", Target: "BankName"},
			{Source: "ccty", Target: "BankCountry", Convert: core.ConverterToUpperCase},
			{Source: "ccit", Target: "CityName"},
			{Source: "strt", Target: "StreetName"},
			{Source: "swif", Target: "SWIFTCode", Convert: core.ConverterToUpperCase},
			{Source: "bgro", Target: "BankGroup"},
			{Source: "natb", Target: "BankNumber"},
			{Source: "crdt", Target: "CreationDate", Convert: core.ConverterToDate},
			{Source: "stat", Target: "IsMarkedForDeletion", Convert: core.ConverterBoolYN},
			{Source: "cont", Target: "ContactPerson"},
			{Source: "telp", Target: "PhoneNumber"},
			{Source: "mail", Target: "EmailAddress"},
			// Branch address block, constant for the migration company.
			{Target: "BankBranch", Default: "HEAD OFFICE"},
			{Target: "AddressVersion", Default: "1"},
			{Target: "Region", Default: ""},
			{Target: "PostalCode", Default: ""},
			{Target: "POBox", Default: ""},
			{Target: "LanguageKey", Default: "EN"},
			{Target: "TimeZone", Default: "UTC"},
			{Target: "CheckDigitMethod", Default: "00"},
			{Target: "BankCategory", Default: "01"},
			{Target: "CentralBankIndicator", Default: ""},
			{Target: "TaxJurisdiction", Default: ""},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"BankKey", "BankName", "BankCountry"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"SWIFTCode"},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 20)
			for i := 0; i < 20; i++ {
				records = append(records, core.Record{
					"bank": seqID("B", 5, 300+i),
					"desc": fmt.Sprintf("First Merchant Bank %02d", i),
					"ccty": strings.ToLower(pick(countryCodes, i)),
					"ccit": pick(cityNames, i),
					"strt": fmt.Sprintf("Finanzplatz %d", 1+i%20),
					"swif": fmt.Sprintf("fmbk%s%02d", strings.ToLower(pick(countryCodes, i)), i),
					"bgro": pick([]string{"G1", "G2", "G3"}, i),
					"natb": seqID("", 8, 40000000+i*97),
					"crdt": dateYYYYMMDD(2012, i*4),
					"stat": boolAlternating(i, 19),
					"cont": fmt.Sprintf("Treasury Desk %02d", i),
					"telp": fmt.Sprintf("+44 20 %06d", 400000+i*7),
					"mail": fmt.Sprintf("treasury%02d@fmb.example", i),
				})
			}
			return records
		},
	}}
}
