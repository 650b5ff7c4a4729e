package schema

// The static merchant-presented-mode tag table: EMVCo base tags plus the
// VietQR national template under tag 38. The reserved-for-future-use bands
// 65-99 are deliberately absent so that lookups outside the defined space
// report not-found.

func exact(id uint8, n *Node) Entry { return Entry{Key: IDRange{Lo: id, Hi: id}, Node: n} }
func span(lo, hi uint8, n *Node) Entry { return Entry{Key: IDRange{Lo: lo, Hi: hi}, Node: n} }

// NewRegistry builds the registry. Call once at startup.
func NewRegistry() *Registry {
	guid := &Node{
		Name:        "Globally Unique Identifier",
		Format:      "ANS",
		Description: "Identifier of the payment network owning this template",
	}

	merchantAccount := &Node{
		Name:        "Merchant Account Information",
		Format:      "ANS",
		Description: "Payment network specific merchant account template",
		SubFields: []Entry{
			exact(0, guid),
			span(1, 99, &Node{
				Name:        "Payment Network Specific",
				Format:      "ANS",
				Description: "Data defined by the payment network named in sub-tag 00",
			}),
		},
	}

	vietQR := &Node{
		Name:        "VietQR",
		Format:      "ANS",
		Description: "NAPAS interbank transfer template",
		SubFields: []Entry{
			exact(0, guid),
			exact(1, &Node{
				Name:        "Payment Network",
				Format:      "ANS",
				Description: "Beneficiary routing: acquirer and merchant identifiers",
				SubFields: []Entry{
					exact(0, &Node{
						Name:        "Acquirer ID",
						Format:      "N",
						Description: "Bank identification number of the beneficiary bank",
						Payload: map[string]string{
							"970403": "Sacombank",
							"970405": "Agribank",
							"970407": "Techcombank",
							"970415": "VietinBank",
							"970416": "ACB",
							"970418": "BIDV",
							"970422": "MB Bank",
							"970423": "TPBank",
							"970432": "VPBank",
							"970436": "Vietcombank",
						},
					}),
					exact(1, &Node{
						Name:        "Merchant ID",
						Format:      "ANS",
						Description: "Beneficiary account or card number",
					}),
				},
			}),
			exact(2, &Node{
				Name:        "Service Code",
				Format:      "ANS",
				Description: "Requested transfer service",
				Payload: map[string]string{
					"QRIBFTTA": "Transfer to account",
					"QRIBFTTC": "Transfer to card",
					"QRPUSH":   "Merchant payment",
				},
			}),
		},
	}

	additionalData := &Node{
		Name:        "Additional Data",
		Format:      "ANS",
		Description: "Optional transaction details template",
		SubFields: []Entry{
			exact(1, &Node{Name: "Bill Number", Format: "ANS", Description: "Invoice or bill reference"}),
			exact(2, &Node{Name: "Mobile Number", Format: "ANS", Description: "Customer mobile number for top-up or billing"}),
			exact(3, &Node{Name: "Store Label", Format: "ANS", Description: "Merchant store identifier"}),
			exact(4, &Node{Name: "Loyalty Number", Format: "ANS", Description: "Customer loyalty programme number"}),
			exact(5, &Node{Name: "Reference Label", Format: "ANS", Description: "Transaction reference assigned by the merchant"}),
			exact(6, &Node{Name: "Customer Label", Format: "ANS", Description: "Customer identifier at the merchant"}),
			exact(7, &Node{Name: "Terminal Label", Format: "ANS", Description: "Terminal identifier at the point of sale"}),
			exact(8, &Node{Name: "Purpose of Transaction", Format: "ANS", Description: "Free-text transfer message"}),
			exact(9, &Node{Name: "Additional Consumer Data Request", Format: "ANS", Description: "Data the merchant asks the consumer app to supply"}),
			span(50, 99, &Node{Name: "Payment System Specific", Format: "ANS", Description: "Additional data defined by a payment system"}),
		},
	}

	language := &Node{
		Name:        "Merchant Information - Language",
		Format:      "ANS",
		Description: "Merchant name and city in an alternate language",
		SubFields: []Entry{
			exact(0, &Node{Name: "Language Preference", Format: "ANS", Description: "ISO 639 language of the alternate fields"}),
			exact(1, &Node{Name: "Merchant Name - Alternate", Format: "ANS", Description: "Merchant name in the alternate language"}),
			exact(2, &Node{Name: "Merchant City - Alternate", Format: "ANS", Description: "Merchant city in the alternate language"}),
		},
	}

	return &Registry{root: []Entry{
		exact(0, &Node{
			Name:        "Payload Format Indicator",
			Format:      "N",
			Description: "Version of the payload layout, always the first tag",
		}),
		exact(1, &Node{
			Name:        "Point of Initiation Method",
			Format:      "N",
			Description: "Whether the symbol is printed once or generated per transaction",
			Payload: map[string]string{
				"11": "Static QR",
				"12": "Dynamic QR",
			},
		}),
		span(2, 3, &Node{Name: "Reserved for Visa", Format: "ANS", Description: "Visa card account data"}),
		span(4, 5, &Node{Name: "Reserved for Mastercard", Format: "ANS", Description: "Mastercard card account data"}),
		span(6, 8, &Node{Name: "Reserved by EMVCo", Format: "ANS", Description: "Reserved by EMVCo"}),
		span(9, 10, &Node{Name: "Reserved for Discover", Format: "ANS", Description: "Discover card account data"}),
		span(11, 12, &Node{Name: "Reserved for Amex", Format: "ANS", Description: "American Express card account data"}),
		span(13, 14, &Node{Name: "Reserved for JCB", Format: "ANS", Description: "JCB card account data"}),
		span(15, 16, &Node{Name: "Reserved for UnionPay", Format: "ANS", Description: "UnionPay card account data"}),
		span(17, 25, &Node{Name: "Reserved by EMVCo", Format: "ANS", Description: "Reserved by EMVCo"}),
		span(26, 37, merchantAccount),
		exact(38, vietQR),
		span(39, 51, merchantAccount),
		exact(52, &Node{
			Name:        "Merchant Category Code",
			Format:      "N",
			Description: "ISO 18245 category of the merchant",
			Payload: map[string]string{
				"0000": "Unspecified",
				"4111": "Local commuter transport",
				"5411": "Grocery stores",
				"5812": "Restaurants",
				"5999": "Specialty retail",
			},
		}),
		exact(53, &Node{
			Name:        "Transaction Currency",
			Format:      "N",
			Description: "ISO 4217 numeric currency code",
			Payload: map[string]string{
				"704": "Vietnamese dong",
				"764": "Thai baht",
				"840": "US dollar",
				"978": "Euro",
			},
		}),
		exact(54, &Node{
			Name:        "Transaction Amount",
			Format:      "ANS",
			Description: "Amount in the transaction currency, absent for open-amount symbols",
		}),
		exact(55, &Node{
			Name:        "Tip or Convenience Indicator",
			Format:      "N",
			Description: "How a tip or fee is collected",
			Payload: map[string]string{
				"01": "Prompt for tip",
				"02": "Fixed convenience fee",
				"03": "Percentage convenience fee",
			},
		}),
		exact(56, &Node{Name: "Convenience Fee Fixed", Format: "ANS", Description: "Fixed fee amount, present when tag 55 is 02"}),
		exact(57, &Node{Name: "Convenience Fee Percentage", Format: "ANS", Description: "Percentage fee, present when tag 55 is 03"}),
		exact(58, &Node{
			Name:        "Country Code",
			Format:      "ANS",
			Description: "ISO 3166-1 alpha-2 country of the merchant",
			Payload: map[string]string{
				"VN": "Viet Nam",
				"TH": "Thailand",
				"SG": "Singapore",
				"US": "United States",
			},
		}),
		exact(59, &Node{Name: "Merchant Name", Format: "ANS", Description: "Doing-business-as name"}),
		exact(60, &Node{Name: "Merchant City", Format: "ANS", Description: "City of the merchant outlet"}),
		exact(61, &Node{Name: "Postal Code", Format: "ANS", Description: "Postal code of the merchant outlet"}),
		exact(62, additionalData),
		exact(63, &Node{
			Name:        "CRC",
			Format:      "ANS",
			Description: "CRC-16/IBM-3740 over the payload, four uppercase hex digits",
		}),
		exact(64, language),
	}}
}
