package catalog

var invoicingItemGroups = []InvoicingItemGroup{
	{
		Key:   "GLOVO_to_COURIER",
		Label: "🎈 GLOVO issues to 🛵 COURIER",
		Items: []InvoicingItem{
			{
				Name:        "ACTIVATION_FEE_TO_COURIER",
				Description: "Glovo charges courier a one-time activation fee when joining the platform.",
				Details:     "Comes from ACTIVATION_FEE_BY_COURIER money movement (same amount). Taxable.",
				MoneyFlow:   "COURIER → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "MATERIAL_FEE_TO_COURIER",
				Description: "Glovo charges courier for materials and equipment provided (delivery bags, branded clothing, etc.).",
				Details:     "Comes from MATERIAL_FEE_BY_COURIER money movement (same amount). Taxable.",
				MoneyFlow:   "COURIER → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PLATFORM_FEE_TO_COURIER",
				Description: "Glovo charges courier a platform usage fee for using the courier app and infrastructure.",
				Details:     "Comes from PLATFORM_FEE_BY_COURIER money movement (same amount). Taxable.",
				MoneyFlow:   "COURIER → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "SALES_FEE_TO_COURIER",
				Description: "Glovo charges courier a sales-based fee on their delivery volume or earnings.",
				Details:     "Comes from SALES_FEE_BY_COURIER money movement (same amount). Taxable.",
				MoneyFlow:   "COURIER → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "OTHER_ADJUSTMENT_TO_COURIER",
				Description: "MANUAL IMPORT: Glovo credits courier for various manual adjustments (debt settlements, corrections, etc.).",
				Details:     "Not from automated money movements. Non-taxable balance.",
				MoneyFlow:   "GLOVO → COURIER",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_DELIVERY_FEE_TO_COURIER",
				Description: "Glovo compensates courier for a delivery fee promotion.",
				Details:     "Splits PROMOTION_DELIVERY_FEE_BY_GLOVO into multiple invoicing items. Non-taxable balance.",
				MoneyFlow:   "GLOVO → COURIER",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
		},
	},
	{
		Key:   "COURIER_to_CUSTOMER",
		Label: "🛵 COURIER issues to 👤 CUSTOMER",
		Items: []InvoicingItem{
			{
				Name:        "DELIVERY_FEE_TO_CUSTOMER",
				Description: "Delivery fee the courier bills directly to the customer.",
				Details:     "Only used in BM2/BM4/BM5 where couriers invoice customers directly (GEN2 models). Taxable.",
				MoneyFlow:   "CUSTOMER → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "DELIVERY_FEE_TO_GLOVO",
				Description: "Internal accounting entry to balance money flow when customer pays delivery fees but courier gets earnings.",
				Details:     "Non-taxable (just balancing). Only used in BM2/BM4/BM5.",
				MoneyFlow:   "GLOVO → COURIER",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_DELIVERY_FEE_BY_COURIER",
				Description: "Delivery fee discount courier passes to customer.",
				Details:     "Used in BM2/BM5 when total promotions exceed what courier would have charged. Non-taxable balance.",
				MoneyFlow:   "COURIER → CUSTOMER",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_DELIVERY_FEE_BY_COURIER_SPONSORED_BY_GLOVO",
				Description: "Glovo-sponsored delivery discount that courier passes to customer.",
				Details:     "Only used in BM5. Glovo pays for the promotion, courier shows it on their invoice. Non-taxable balance.",
				MoneyFlow:   "COURIER → CUSTOMER",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_DELIVERY_FEE_BY_COURIER_SPONSORED_BY_PARTNER",
				Description: "Partner-sponsored delivery discount that courier passes to customer.",
				Details:     "Only used in BM5. Partner pays, courier shows it on invoice. Non-taxable balance.",
				MoneyFlow:   "COURIER → CUSTOMER",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
		},
	},
	{
		Key:   "GLOVO_to_CUSTOMER",
		Label: "🎈 GLOVO issues to 👤 CUSTOMER",
		Items: []InvoicingItem{
			{
				Name:        "BAD_WEATHER_SURCHARGE_TO_CUSTOMER",
				Description: "Extra fee Glovo charges customer for deliveries during bad weather.",
				Details:     "Comes from BAD_WEATHER_SURCHARGE_BY_CUSTOMER money movement (same amount). Taxable.",
				MoneyFlow:   "CUSTOMER → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "DELIVERY_FEE_BY_GLOVO",
				Description: "Delivery fee Glovo charges the customer on their invoice.",
				Details:     "Calculation depends on business model. Taxable.",
				MoneyFlow:   "CUSTOMER → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "FLASH_DEAL_PROMOTION_FROM_GLOVO_TO_CUSTOMER",
				Description: "Glovo shows customer the flash deal discount they're receiving.",
				Details:     "Splits FLASH_DEAL_PROMOTION_FROM_PARTNER_TO_CUSTOMER into two invoicing items. Non-taxable balance.",
				MoneyFlow:   "GLOVO → CUSTOMER",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "GLOVO_BALANCE_DISCOUNT_TO_CUSTOMER",
				Description: "Discount when service fee calculation results in negative amount.",
				Details:     "Only used in BM4 without partner. Taxable.",
				MoneyFlow:   "GLOVO → CUSTOMER",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "MINIMUM_BASKET_SURCHARGE_TO_CUSTOMER",
				Description: "Fee Glovo charges customer when order total is below minimum basket requirement.",
				Details:     "Comes from MINIMUM_BASKET_SURCHARGE_BY_CUSTOMER money movement. Taxable.",
				MoneyFlow:   "CUSTOMER → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "MPL_DELIVERY_FEE_BY_GLOVO",
				Description: "Delivery fee Glovo charges in marketplace model where partner handles delivery.",
				Details:     "Comes from DELIVERY_FEE_BY_CUSTOMER. Non-taxable balance.",
				MoneyFlow:   "CUSTOMER → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "MPL_DELIVERY_FEE_BY_GLOVO_TAXABLE",
				Description: "Delivery fee for VAT-optimised Gen 2 cases with service tax applied.",
				Details:     "Taxable version for specific tax optimization scenarios.",
				MoneyFlow:   "CUSTOMER → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PRICING_SERVICE_FEE_TO_CUSTOMER",
				Description: "Glovo charges customer a platform service fee.",
				Details:     "Comes from PRICING_SERVICE_FEE_BY_CUSTOMER money movement. Taxable.",
				MoneyFlow:   "CUSTOMER → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PRODUCTS_REFUND_AFFECTING_COMMISSION_TO_CUSTOMER",
				Description: "Glovo refunds customer for product issues.",
				Details:     "Splits PRODUCTS_REFUND_AFFECTING_COMMISSION_BY_PARTNER. Non-taxable balance.",
				MoneyFlow:   "GLOVO → CUSTOMER",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PRODUCTS_REFUND_NOT_AFFECTING_COMMISSION_TO_CUSTOMER",
				Description: "Glovo refunds customer for product issues (commission not affected).",
				Details:     "Splits PRODUCTS_REFUND_NOT_AFFECTING_COMMISSION_BY_PARTNER. Non-taxable balance.",
				MoneyFlow:   "GLOVO → CUSTOMER",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PRODUCTS_TO_CUSTOMER",
				Description: "Glovo charges customer for products purchased.",
				Details:     "Comes from PRODUCTS_BY_CUSTOMER money movement. Non-taxable balance.",
				MoneyFlow:   "CUSTOMER → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_BAD_WEATHER_SURCHARGE_TO_CUSTOMER",
				Description: "Glovo gives discount to customer for bad weather surcharge.",
				Details:     "Glovo-sponsored promotion. Non-taxable balance.",
				MoneyFlow:   "GLOVO → CUSTOMER",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_DELIVERY_FEE_BY_GLOVO",
				Description: "Delivery fee discount Glovo gives to customer ('Free Delivery' promotions).",
				Details:     "Calculation depends on business model. Taxable.",
				MoneyFlow:   "GLOVO → CUSTOMER",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_DELIVERY_FEE_TO_CUSTOMER",
				Description: "Delivery fee discount shown to customer (non-taxable).",
				Details:     "From partner-sponsored promotions. Non-taxable balance.",
				MoneyFlow:   "GLOVO → CUSTOMER",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_DELIVERY_FEE_TO_CUSTOMER_TAXABLE",
				Description: "Delivery fee discount (taxable version).",
				Details:     "Used in countries where promotions must be taxed. Taxable.",
				MoneyFlow:   "GLOVO → CUSTOMER",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_MINIMUM_BASKET_SURCHARGE_TO_CUSTOMER",
				Description: "Glovo gives customer a discount on minimum basket surcharge.",
				Details:     "Based on PROMOTION_MINIMUM_BASKET_SURCHARGE_BY_PARTNER. Non-taxable balance.",
				MoneyFlow:   "GLOVO → CUSTOMER",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_PRODUCT_AFFECTING_COMMISSION_TO_CUSTOMER",
				Description: "Glovo shows customer a product discount that partner sponsored.",
				Details:     "Splits PROMOTION_PRODUCT_AFFECTING_COMMISSION_BY_PARTNER. Non-taxable balance.",
				MoneyFlow:   "GLOVO → CUSTOMER",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_PRODUCT_NOT_AFFECTING_COMMISSION_TO_CUSTOMER",
				Description: "Product discount that partner sponsored (commission not affected).",
				Details:     "Splits PROMOTION_PRODUCT_NOT_AFFECTING_COMMISSION_BY_PARTNER. Non-taxable balance.",
				MoneyFlow:   "GLOVO → CUSTOMER",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_PRODUCT_TO_CUSTOMER",
				Description: "Glovo gives customer a product discount (Glovo-sponsored promotion like '20% off').",
				Details:     "Comes from PROMOTION_PRODUCT_BY_GLOVO money movement. Non-taxable balance.",
				MoneyFlow:   "GLOVO → CUSTOMER",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "REFUND_TO_CUSTOMER",
				Description: "Glovo refunds customer for order issues (missing items, quality problems, etc.).",
				Details:     "Comes from REFUND_BY_GLOVO money movement. Non-taxable balance.",
				MoneyFlow:   "GLOVO → CUSTOMER",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "SERVICE_FEE_TO_CUSTOMER",
				Description: "Platform service fee Glovo charges customer.",
				Details:     "Only used in BM4. Replaces DELIVERY_FEE_BY_GLOVO. Taxable.",
				MoneyFlow:   "CUSTOMER → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "TIP_TO_CUSTOMER",
				Description: "Glovo shows the customer their tip amount on the invoice/receipt.",
				Details:     "Comes from TIP_BY_CUSTOMER money movement. Non-taxable balance.",
				MoneyFlow:   "CUSTOMER → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PRIME_SUBSCRIPTION_TO_CUSTOMER",
				Description: "Glovo charges customer for Prime subscription membership fee.",
				Details:     "Comes from PRIME_SUBSCRIPTION_BY_CUSTOMER money movement. Taxable.",
				MoneyFlow:   "CUSTOMER → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_PRIME_SUBSCRIPTION_TO_CUSTOMER",
				Description: "Glovo gives customer a Prime subscription discount.",
				Details:     "Comes from PROMOTION_PRIME_SUBSCRIPTION_BY_GLOVO money movement. Taxable.",
				MoneyFlow:   "GLOVO → CUSTOMER",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
		},
	},
	{
		Key:   "COURIER_to_GLOVO",
		Label: "🛵 COURIER issues to 🎈 GLOVO",
		Items: []InvoicingItem{
			{
				Name:        "CASH_COLLECTED_BY_COURIER",
				Description: "Courier owes Glovo for cash collected from customers (cash-on-delivery).",
				Details:     "Comes from CASH_COLLECTED_BY_COURIER money movement. Non-taxable balance.",
				MoneyFlow:   "COURIER → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "CASH_OUT_BY_COURIER",
				Description: "Courier's balance is reduced for cash earnings already paid out.",
				Details:     "Comes from CASH_OUT_BY_COURIER money movement. Non-taxable balance.",
				MoneyFlow:   "COURIER → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "CHALLENGE_REWARD_BY_COURIER",
				Description: "Courier bills Glovo for challenge reward (completing delivery goals).",
				Details:     "Comes from CHALLENGE_REWARD_TO_COURIER money movement. Taxable.",
				MoneyFlow:   "GLOVO → COURIER",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "EXTERNAL_EARNINGS_BONUS_BY_COURIER",
				Description: "Courier bills Glovo for special bonuses (exceptional performance, compensation, etc.).",
				Details:     "Comes from EXTERNAL_EARNINGS_BONUS_TO_COURIER money movement. Taxable.",
				MoneyFlow:   "GLOVO → COURIER",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "FRAUD_BY_COURIER",
				Description: "Courier owes Glovo for fraudulent activities detected.",
				Details:     "Comes from FRAUD_BY_COURIER money movement. Non-taxable balance.",
				MoneyFlow:   "COURIER → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "GUARANTEE_BY_COURIER",
				Description: "Courier bills Glovo for minimum earnings guarantee payment.",
				Details:     "Comes from GUARANTEE_TO_COURIER money movement. Taxable.",
				MoneyFlow:   "GLOVO → COURIER",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PRODUCT_INCIDENTS_BY_COURIER",
				Description: "Courier owes Glovo for product incidents they caused.",
				Details:     "Comes from PRODUCT_INCIDENTS_BY_COURIER money movement. Non-taxable balance.",
				MoneyFlow:   "COURIER → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "REFERRAL_BY_COURIER",
				Description: "Courier bills Glovo for referring new couriers to the platform.",
				Details:     "Comes from REFERRAL_TO_COURIER money movement. Taxable. NET amount.",
				MoneyFlow:   "GLOVO → COURIER",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "TIP_BY_COURIER",
				Description: "Courier bills Glovo for tips received.",
				Details:     "Comes from TIP_TO_COURIER money movement. Non-taxable balance.",
				MoneyFlow:   "GLOVO → COURIER",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "OTHER_ADJUSTMENT_BY_COURIER",
				Description: "MANUAL IMPORT: Courier owes Glovo for various manual adjustments.",
				Details:     "Not from automated money movements. Non-taxable balance.",
				MoneyFlow:   "COURIER → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "CPO_ASSUMED_BY_GLOVO",
				Description: "Courier bills Glovo for delivery service.",
				Details:     "Only in BM4 with aggregated invoicing. Taxable.",
				MoneyFlow:   "GLOVO → COURIER",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "DELIVERY_FEE_BY_COURIER",
				Description: "Payment courier invoices to Glovo for completing a delivery.",
				Details:     "NET amount (after tax). Amount depends on business model.",
				MoneyFlow:   "CUSTOMER → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "ORDER_EARNINGS_BY_COURIER",
				Description: "Courier bills Glovo for delivery service (Cost Per Order / CPO).",
				Details:     "Used in Default/BM1/BM8. Comes from ORDER_EARNINGS_TO_COURIER. Taxable NET amount.",
				MoneyFlow:   "GLOVO → COURIER",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
		},
	},
	{
		Key:   "COURIER_to_PARTNER",
		Label: "🛵 COURIER issues to 🏪 STORE_ADDRESS",
		Items: []InvoicingItem{
			{
				Name:        "CPO_ASSUMED_BY_PARTNER",
				Description: "Courier bills partner directly for delivery service.",
				Details:     "Only in BM4 with standard invoicing when courier costs exceed customer coverage. Taxable.",
				MoneyFlow:   "STORE_ADDRESS → COURIER",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
		},
	},
	{
		Key:   "GLOVO_to_PARTNER",
		Label: "🎈 GLOVO issues to 🏪 STORE_ADDRESS",
		Items: []InvoicingItem{
			{
				Name:        "MKT_GMO_DEBIT_TO_PARTNER",
				Description: "Glovo charges partner for advertising/marketing campaigns on the platform.",
				Details:     "Comes from MKT_GMO_DEBIT_BY_PARTNER money movement. Taxable NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "MKT_ACTIONS_TO_PARTNER",
				Description: "MANUAL IMPORT: Glovo charges partner for Marketing Actions campaign.",
				Details:     "Not from money movements. Taxable NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "MKT_BOOST_TO_PARTNER",
				Description: "MANUAL IMPORT: Glovo charges partner for Marketing Boost campaign.",
				Details:     "Not from money movements. Taxable NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "MKT_CRM_TO_PARTNER",
				Description: "MANUAL IMPORT: Glovo charges partner for CRM Marketing campaign.",
				Details:     "Not from money movements. Taxable NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "MKT_DFP_TO_PARTNER",
				Description: "MANUAL IMPORT: Glovo charges partner for Display & Featured Products marketing.",
				Details:     "Not from money movements. Taxable NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "MKT_KEYWORDS_TO_PARTNER",
				Description: "MANUAL IMPORT: Glovo charges partner for Keywords Marketing campaign.",
				Details:     "Not from money movements. Taxable NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "MKT_OTHER_TO_PARTNER",
				Description: "MANUAL IMPORT: Glovo charges partner for Other Marketing campaigns.",
				Details:     "Not from money movements. Taxable NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "MKT_POSITIONING_TO_PARTNER",
				Description: "MANUAL IMPORT: Glovo charges partner for Positioning/Placement marketing.",
				Details:     "Not from money movements. Taxable NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "MKT_SEARCH_TO_PARTNER",
				Description: "MANUAL IMPORT: Glovo charges partner for Search Marketing campaign.",
				Details:     "Not from money movements. Taxable NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "BAD_WEATHER_SURCHARGE_TO_PARTNER",
				Description: "Glovo pays partner the bad weather surcharge collected from customer.",
				Details:     "Comes from BAD_WEATHER_SURCHARGE_TO_PARTNER money movement. Non-taxable balance.",
				MoneyFlow:   "GLOVO → STORE_ADDRESS",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "BAD_WEATHER_SURCHARGE_TO_PARTNER_TAXABLE",
				Description: "Bad weather surcharge with food VAT applied for VAT optimisation.",
				Details:     "Comes from BAD_WEATHER_SURCHARGE_TO_PARTNER money movement. Taxable.",
				MoneyFlow:   "GLOVO → STORE_ADDRESS",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "COMMISSION_TO_PARTNER",
				Description: "Commission fee Glovo charges partner for facilitating the sale.",
				Details:     "Comes from COMMISSION_BY_PARTNER money movement. Taxable NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "CPO_ASSUMED_TO_GLOVO",
				Description: "Fee Glovo charges partner for courier delivery costs.",
				Details:     "Only in BM4 with aggregated invoicing. Taxable.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "FLASH_DEAL_FEE_FROM_GLOVO_TO_PARTNER",
				Description: "Glovo charges partner for featuring products in flash deals.",
				Details:     "Comes from FLASH_DEAL_FEE_FROM_PARTNER_TO_GLOVO money movement. Taxable.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "FLASH_DEAL_PROMOTION_FROM_GLOVO_TO_PARTNER",
				Description: "Glovo charges partner for the flash deal discount given to customers.",
				Details:     "Comes from FLASH_DEAL_PROMOTION_FROM_PARTNER_TO_CUSTOMER. Non-taxable balance.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "GLOVO_BALANCE_DISCOUNT_TO_PARTNER",
				Description: "Discount when commission minus courier costs results in negative amount.",
				Details:     "Only in BM4 with aggregated invoicing. Taxable.",
				MoneyFlow:   "GLOVO → STORE_ADDRESS",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "GLOVO_BALANCE_VOUCHER_TO_PARTNER",
				Description: "Credit when commission minus courier costs results in negative amount (non-taxable).",
				Details:     "Only in BM4 with standard invoicing. Non-taxable balance.",
				MoneyFlow:   "GLOVO → STORE_ADDRESS",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "INCIDENT_COMMISSION_TO_PARTNER",
				Description: "Glovo credits partner a commission adjustment due to order incident.",
				Details:     "Comes from INCIDENT_COMMISSION_BY_PARTNER money movement. Taxable NET amount.",
				MoneyFlow:   "GLOVO → STORE_ADDRESS",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "INCIDENT_PRODUCTS_AFFECTING_COMMISSION_TO_PARTNER",
				Description: "Glovo pays partner for replacement products added due to incidents (affects commission).",
				Details:     "Comes from INCIDENT_PRODUCTS_AFFECTING_COMMISSION_BY_PARTNER. Non-taxable balance.",
				MoneyFlow:   "GLOVO → STORE_ADDRESS",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "INCIDENT_PRODUCTS_NOT_AFFECTING_COMMISSION_TO_PARTNER",
				Description: "Glovo pays partner for replacement products (doesn't affect commission).",
				Details:     "Comes from INCIDENT_PRODUCTS_NOT_AFFECTING_COMMISSION_BY_PARTNER. Non-taxable balance.",
				MoneyFlow:   "GLOVO → STORE_ADDRESS",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "MINIMUM_BASKET_SURCHARGE_TO_PARTNER",
				Description: "Glovo pays partner the minimum basket surcharge collected from customer.",
				Details:     "Comes from MINIMUM_BASKET_SURCHARGE_TO_PARTNER money movement. Non-taxable balance.",
				MoneyFlow:   "GLOVO → STORE_ADDRESS",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "MINIMUM_BASKET_SURCHARGE_TO_PARTNER_TAXABLE",
				Description: "Minimum basket surcharge with food VAT applied for VAT optimisation.",
				Details:     "Comes from MINIMUM_BASKET_SURCHARGE_TO_PARTNER money movement. Taxable.",
				MoneyFlow:   "GLOVO → STORE_ADDRESS",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "MPL_DELIVERY_FEE_TO_PARTNER",
				Description: "Payment Glovo makes to partner for handling their own delivery.",
				Details:     "Used in marketplace model. Comes from DELIVERY_FEE_TO_PARTNER. Non-taxable balance.",
				MoneyFlow:   "GLOVO → STORE_ADDRESS",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "MPL_DELIVERY_FEE_TO_PARTNER_TAXABLE",
				Description: "Payment for partner delivery with food tax applied.",
				Details:     "For Gen2 orders to VAT optimise. Taxable.",
				MoneyFlow:   "GLOVO → STORE_ADDRESS",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PRIME_ORDER_VENDOR_FEE_FROM_GLOVO_TO_PARTNER",
				Description: "Glovo charges partner a Prime order vendor fee.",
				Details:     "Comes from PRIME_ORDER_VENDOR_FEE_FROM_PARTNER_TO_GLOVO. Taxable.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PRODUCTS_PAID_IN_CASH_BY_CUSTOMER_REDUCE_BALANCE_TO_PARTNER",
				Description: "Glovo reduces partner balance when customer paid in cash directly to partner.",
				Details:     "Comes from PRODUCTS_IN_CASH_BY_CUSTOMER_REDUCE_BALANCE_BY_PARTNER. Non-taxable balance.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PRODUCTS_PAID_IN_CASH_BY_GLOVO_REDUCE_BALANCE_TO_PARTNER",
				Description: "Glovo reduces partner balance when Glovo paid them in cash.",
				Details:     "Courier delivered cash to partner on Glovo's behalf. Non-taxable balance.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PRODUCTS_PAID_IN_CASH_REDUCE_BALANCE_TO_PARTNER",
				Description: "DEPRECATED. Glovo reduces partner balance when customer paid in cash.",
				Details:     "Non-taxable balance.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PRODUCTS_PAID_WITH_VOUCHER_REDUCE_BALANCE_TO_PARTNER",
				Description: "Glovo reduces partner balance when customer used a voucher/gift card.",
				Details:     "Comes from PRODUCTS_PAID_WITH_VOUCHER_REDUCE_BALANCE_BY_PARTNER. Non-taxable balance.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PRODUCTS_REFUND_AFFECTING_COMMISSION_TO_PARTNER",
				Description: "Glovo charges partner for a product refund that affects commission.",
				Details:     "Comes from PRODUCTS_REFUND_AFFECTING_COMMISSION_BY_PARTNER. Non-taxable balance.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PRODUCTS_REFUND_NOT_AFFECTING_COMMISSION_TO_PARTNER",
				Description: "Glovo charges partner for a product refund (commission NOT affected).",
				Details:     "Comes from PRODUCTS_REFUND_NOT_AFFECTING_COMMISSION_BY_PARTNER. Non-taxable balance.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PRODUCTS_TO_PARTNER",
				Description: "Glovo pays the partner for products sold.",
				Details:     "Comes from PRODUCTS_TO_PARTNER money movement. Non-taxable balance.",
				MoneyFlow:   "GLOVO → STORE_ADDRESS",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_DELIVERY_FEE_TO_PARTNER",
				Description: "Fee Glovo charges partner for a delivery promotion the partner sponsored.",
				Details:     "Comes from PROMOTION_DELIVERY_FEE_BY_PARTNER. Used in BM2/BM5. Non-taxable balance.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_DELIVERY_FEE_TO_PARTNER_TAXABLE",
				Description: "Partner-sponsored delivery promotion (taxable version).",
				Details:     "Used in countries where promotions must be taxed. Taxable.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_MINIMUM_BASKET_SURCHARGE_TO_PARTNER",
				Description: "Glovo charges partner for waiving the minimum basket surcharge.",
				Details:     "Comes from PROMOTION_MINIMUM_BASKET_SURCHARGE_BY_PARTNER. Non-taxable balance.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_PRODUCT_AFFECTING_COMMISSION_TO_PARTNER",
				Description: "Glovo charges partner for product discount (affects commission calculation).",
				Details:     "Comes from PROMOTION_PRODUCT_AFFECTING_COMMISSION_BY_PARTNER. Non-taxable balance.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "PROMOTION_PRODUCT_NOT_AFFECTING_COMMISSION_TO_PARTNER",
				Description: "Glovo charges partner for product discount (doesn't affect commission).",
				Details:     "Comes from PROMOTION_PRODUCT_NOT_AFFECTING_COMMISSION_BY_PARTNER. Non-taxable balance.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "SERVICE_FEE_PAID_IN_CASH_TO_PARTNER",
				Description: "Glovo charges partner when customer paid service fee in cash to partner.",
				Details:     "Comes from SERVICE_FEE_PAID_IN_CASH_REDUCE_BALANCE_BY_PARTNER. Non-taxable balance.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "GROSS",
			},
			{
				Name:        "WAITING_TIME_FEE_TAXABLE_REFUND_TO_PARTNER",
				Description: "Glovo refunds partner a waiting time fee that was charged incorrectly.",
				Details:     "Comes from WAITING_TIME_FEE_TAXABLE_REFUND_TO_PARTNER. Taxable NET amount.",
				MoneyFlow:   "GLOVO → STORE_ADDRESS",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "WAITING_TIME_FEE_TO_PARTNER",
				Description: "Glovo charges partner a waiting time fee (taxable version).",
				Details:     "From WAITING_TIME_FEE_BY_PARTNER money movement. Taxable NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "WAITING_TIME_FEE_TO_PARTNER_NON_TAXABLE",
				Description: "Glovo charges partner a waiting time fee (non-taxable version).",
				Details:     "From WAITING_TIME_FEE_BY_PARTNER money movement. Non-taxable balance NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "NET",
			},
			{
				Name:        "MATERIAL_FEE_TO_PARTNER",
				Description: "Glovo charges partner for materials and supplies provided.",
				Details:     "Comes from MATERIAL_FEE_BY_PARTNER money movement. Taxable NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "PLATFORM_FEE_TO_PARTNER",
				Description: "Glovo charges partner a platform usage fee for using Glovo's infrastructure.",
				Details:     "Comes from PLATFORM_FEE_BY_PARTNER money movement. Taxable NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "SALES_FEE_TO_PARTNER",
				Description: "Glovo charges partner a sales-based fee (separate from commission).",
				Details:     "Comes from SALES_FEE_BY_PARTNER money movement. Taxable NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "SANCTIONS_TO_PARTNER",
				Description: "Glovo charges partner a sanction/penalty for policy violations or quality issues.",
				Details:     "Comes from SANCTIONS_BY_PARTNER money movement. Taxable NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
			{
				Name:        "INSTANT_PAYOUTS_ALREADY_PAID_TO_PARTNER",
				Description: "Glovo records instant payout already transferred to partner, reducing their balance.",
				Details:     "Comes from INSTANT_PAYOUTS_ALREADY_PAID_TO_PARTNER. Non-taxable balance NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "NON_TAXABLE_BALANCE",
				AmountType:  "NET",
			},
			{
				Name:        "INSTANT_PAYOUTS_FEE_TO_PARTNER",
				Description: "Glovo charges partner a fee for instant payout service.",
				Details:     "Comes from INSTANT_PAYOUTS_FEE_BY_PARTNER money movement. Taxable NET amount.",
				MoneyFlow:   "STORE_ADDRESS → GLOVO",
				Taxation:    "TAXABLE",
				AmountType:  "NET",
			},
		},
	},
}
