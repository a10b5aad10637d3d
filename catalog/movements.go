package catalog

var moneyMovementGroups = []MoneyMovementGroup{
	{
		Key:   "COURIER_to_GLOVO",
		Label: "🛵 COURIER → 🎈 GLOVO",
		Items: []MoneyMovement{
			{
				Name:        "ACTIVATION_FEE_BY_COURIER",
				Description: "One-time activation fee charged when courier joins the Glovo platform.",
				TaxType:     "GROSS",
				Source:      "COURIER_ACCOUNT_ENTRY",
			},
			{
				Name:        "CASH_COLLECTED_BY_COURIER",
				Description: "Cash collected by courier from customers on behalf of Glovo (cash-on-delivery orders).",
				TaxType:     "GROSS",
				Source:      "COURIER_ACCOUNT_ENTRY",
			},
			{
				Name:        "CASH_OUT_BY_COURIER",
				Description: "Records cash earnings already paid to courier, reducing their balance.",
				TaxType:     "GROSS",
				Source:      "COURIER_ACCOUNT_ENTRY",
			},
			{
				Name:        "FRAUD_BY_COURIER",
				Description: "Charges to courier for fraudulent activities detected on their account.",
				TaxType:     "GROSS",
				Source:      "COURIER_ACCOUNT_ENTRY",
			},
			{
				Name:        "MATERIAL_FEE_BY_COURIER",
				Description: "Fee charged to couriers for physical materials and equipment provided by Glovo.",
				TaxType:     "GROSS",
				Source:      "COURIER_ACCOUNT_ENTRY",
			},
			{
				Name:        "PLATFORM_FEE_BY_COURIER",
				Description: "Platform usage fee charged to couriers for using Glovo's infrastructure and courier app.",
				TaxType:     "GROSS",
				Source:      "COURIER_ACCOUNT_ENTRY",
			},
			{
				Name:        "PRODUCT_INCIDENTS_BY_COURIER",
				Description: "Charges to courier for product-related incidents caused by the courier.",
				TaxType:     "GROSS",
				Source:      "COURIER_ACCOUNT_ENTRY",
			},
			{
				Name:        "SALES_FEE_BY_COURIER",
				Description: "Sales-based fee charged to couriers based on delivery volume or earnings.",
				TaxType:     "GROSS",
				Source:      "COURIER_ACCOUNT_ENTRY",
			},
		},
	},
	{
		Key:   "CUSTOMER_to_GLOVO",
		Label: "👤 CUSTOMER → 🎈 GLOVO",
		Items: []MoneyMovement{
			{
				Name:        "BAD_WEATHER_SURCHARGE_BY_CUSTOMER",
				Description: "Extra fee charged to customers during bad weather to compensate for difficult delivery conditions.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "DELIVERY_FEE_BY_CUSTOMER",
				Description: "Delivery fee paid by customer for order delivery. Includes surge fees during high demand.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "MINIMUM_BASKET_SURCHARGE_BY_CUSTOMER",
				Description: "Fee charged when order value is below the store's minimum basket requirement.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "PRICING_SERVICE_FEE_BY_CUSTOMER",
				Description: "Service fee charged by Glovo for providing the platform and service.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "PRODUCTS_BY_CUSTOMER",
				Description: "The cost of products/items that the customer ordered.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "TIP_BY_CUSTOMER",
				Description: "Optional tip paid by customer for the courier (Glovo later transfers to courier).",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "PRIME_SUBSCRIPTION_BY_CUSTOMER",
				Description: "Subscription fee customers pay for Glovo Prime membership.",
				TaxType:     "GROSS",
				Source:      "PRIME_SUBSCRIPTION",
			},
		},
	},
	{
		Key:   "GLOVO_to_COURIER",
		Label: "🎈 GLOVO → 🛵 COURIER",
		Items: []MoneyMovement{
			{
				Name:        "CHALLENGE_REWARD_TO_COURIER",
				Description: "Bonus payment for completing delivery challenges.",
				TaxType:     "GROSS",
				Source:      "COURIER_ACCOUNT_ENTRY",
			},
			{
				Name:        "EXTERNAL_EARNINGS_BONUS_TO_COURIER",
				Description: "Special one-time bonuses for couriers (promotions, compensation, exceptional performance).",
				TaxType:     "GROSS",
				Source:      "COURIER_ACCOUNT_ENTRY",
			},
			{
				Name:        "GUARANTEE_TO_COURIER",
				Description: "Minimum earnings guarantee payment ensuring couriers earn a minimum amount.",
				TaxType:     "NET",
				Source:      "COURIER_ACCOUNT_ENTRY",
			},
			{
				Name:        "REFERRAL_TO_COURIER",
				Description: "Bonus payment to courier for referring new couriers to Glovo.",
				TaxType:     "NET",
				Source:      "COURIER_ACCOUNT_ENTRY",
			},
			{
				Name:        "TIP_TO_COURIER",
				Description: "Tips transferred to couriers via account entry system.",
				TaxType:     "GROSS",
				Source:      "COURIER_ACCOUNT_ENTRY",
			},
			{
				Name:        "ORDER_EARNINGS_TO_COURIER",
				Description: "Payment to courier for completing a delivery (Cost Per Order / CPO).",
				TaxType:     "NET",
				Source:      "ORDER",
			},
		},
	},
	{
		Key:   "GLOVO_to_CUSTOMER",
		Label: "🎈 GLOVO → 👤 CUSTOMER",
		Items: []MoneyMovement{
			{
				Name:        "PROMOTION_BAD_WEATHER_SURCHARGE_BY_GLOVO",
				Description: "Discount on bad weather surcharge sponsored by Glovo.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "PROMOTION_DELIVERY_FEE_BY_GLOVO",
				Description: "Delivery fee discount sponsored by Glovo to the customer ('Free delivery' promotions).",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "PROMOTION_PRODUCT_BY_GLOVO",
				Description: "Product discount/promotion sponsored by Glovo to the customer.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "REFUND_BY_GLOVO",
				Description: "Money refunded by Glovo to customer due to order issues.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "PROMOTION_PRIME_SUBSCRIPTION_BY_GLOVO",
				Description: "Promotional discount on Prime subscription sponsored by Glovo.",
				TaxType:     "GROSS",
				Source:      "PRIME_SUBSCRIPTION",
			},
		},
	},
	{
		Key:   "GLOVO_to_PARTNER",
		Label: "🎈 GLOVO → 🏪 STORE_ADDRESS",
		Items: []MoneyMovement{
			{
				Name:        "BAD_WEATHER_SURCHARGE_TO_PARTNER",
				Description: "Bad weather surcharge collected from customer, transferred to partner.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "DELIVERY_FEE_TO_PARTNER",
				Description: "Delivery fee paid to partner when partner handles their own delivery.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "INCIDENT_COMMISSION_BY_PARTNER",
				Description: "Commission refund/adjustment to partner due to order incidents.",
				TaxType:     "NET",
				Source:      "ORDER",
			},
			{
				Name:        "INCIDENT_PRODUCTS_AFFECTING_COMMISSION_BY_PARTNER",
				Description: "Additional products added due to incidents that increase commission calculation.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "INCIDENT_PRODUCTS_NOT_AFFECTING_COMMISSION_BY_PARTNER",
				Description: "Additional products added due to incidents that do NOT affect commission.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "MINIMUM_BASKET_SURCHARGE_TO_PARTNER",
				Description: "Minimum basket surcharge transferred from Glovo to partner.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "PRODUCTS_TO_PARTNER",
				Description: "Payment for products sold, transferred from Glovo to the partner.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "WAITING_TIME_FEE_TAXABLE_REFUND_TO_PARTNER",
				Description: "Refund of a waiting time fee back to the partner (if charged incorrectly).",
				TaxType:     "NET",
				Source:      "ORDER",
			},
		},
	},
	{
		Key:   "PARTNER_to_CUSTOMER",
		Label: "🏪 STORE_ADDRESS → 👤 CUSTOMER",
		Items: []MoneyMovement{
			{
				Name:        "FLASH_DEAL_PROMOTION_FROM_PARTNER_TO_CUSTOMER",
				Description: "Discount on flash deal items, paid by the partner to the customer.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "PRODUCTS_REFUND_AFFECTING_COMMISSION_BY_PARTNER",
				Description: "Refund amount charged to partner that reduces Glovo's commission.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "PRODUCTS_REFUND_NOT_AFFECTING_COMMISSION_BY_PARTNER",
				Description: "Refund amount charged to partner that does NOT reduce commission.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "PROMOTION_DELIVERY_FEE_BY_PARTNER",
				Description: "Delivery fee discount sponsored and paid by partner to reduce customer delivery cost.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "PROMOTION_MINIMUM_BASKET_SURCHARGE_BY_PARTNER",
				Description: "Partner-sponsored discount that waives or reduces the minimum basket surcharge.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "PROMOTION_PRODUCT_AFFECTING_COMMISSION_BY_PARTNER",
				Description: "Product discount sponsored by partner that reduces the commission partner pays to Glovo.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "PROMOTION_PRODUCT_NOT_AFFECTING_COMMISSION_BY_PARTNER",
				Description: "Product discount sponsored by partner that does NOT reduce commission.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
		},
	},
	{
		Key:   "PARTNER_to_GLOVO",
		Label: "🏪 STORE_ADDRESS → 🎈 GLOVO",
		Items: []MoneyMovement{
			{
				Name:        "MKT_GMO_DEBIT_BY_PARTNER",
				Description: "Advertising fees charged to partners for marketing campaigns on the Glovo platform.",
				TaxType:     "NET",
				Source:      "ADS_REPORT",
			},
			{
				Name:        "COMMISSION_BY_PARTNER",
				Description: "Commission fee Glovo charges partner for facilitating the sale.",
				TaxType:     "NET",
				Source:      "ORDER",
			},
			{
				Name:        "FLASH_DEAL_FEE_FROM_PARTNER_TO_GLOVO",
				Description: "Fee charged to partners when their products are featured in flash deals.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "PRIME_ORDER_VENDOR_FEE_FROM_PARTNER_TO_GLOVO",
				Description: "Fee charged to partners for orders from Glovo Prime members.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "PRODUCTS_IN_CASH_BY_CUSTOMER_REDUCE_BALANCE_BY_PARTNER",
				Description: "Products paid in cash by customer directly to partner. Reduces partner balance with Glovo.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "PRODUCTS_IN_CASH_BY_GLOVO_REDUCE_BALANCE_BY_PARTNER",
				Description: "Cash Glovo paid to partner on behalf of customer. Reduces partner balance.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "PRODUCTS_PAID_WITH_VOUCHER_REDUCE_BALANCE_BY_PARTNER",
				Description: "Products paid with voucher/gift card. Reduces partner balance with Glovo.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "SERVICE_FEE_PAID_IN_CASH_REDUCE_BALANCE_BY_PARTNER",
				Description: "Service fee paid in cash by customer to partner. Reduces partner balance.",
				TaxType:     "GROSS",
				Source:      "ORDER",
			},
			{
				Name:        "WAITING_TIME_FEE_BY_PARTNER",
				Description: "Fee charged to partner when courier waits too long for order preparation.",
				TaxType:     "NET",
				Source:      "ORDER",
			},
			{
				Name:        "MATERIAL_FEE_BY_PARTNER",
				Description: "Fee charged to partners for materials and supplies provided by Glovo.",
				TaxType:     "NET",
				Source:      "PARTNER_FEES",
			},
			{
				Name:        "PLATFORM_FEE_BY_PARTNER",
				Description: "Platform usage fee charged to partners for using Glovo's infrastructure and services.",
				TaxType:     "NET",
				Source:      "PARTNER_FEES",
			},
			{
				Name:        "SALES_FEE_BY_PARTNER",
				Description: "Sales-based fee charged to partners, calculated based on sales volume.",
				TaxType:     "NET",
				Source:      "PARTNER_FEES",
			},
			{
				Name:        "SANCTIONS_BY_PARTNER",
				Description: "Penalties charged to partners for policy violations or quality issues.",
				TaxType:     "NET",
				Source:      "PARTNER_FEES",
			},
			{
				Name:        "INSTANT_PAYOUTS_ALREADY_PAID_TO_PARTNER",
				Description: "Records instant payout amount already transferred to partner.",
				TaxType:     "NET",
				Source:      "PAYOUT",
			},
			{
				Name:        "INSTANT_PAYOUTS_FEE_BY_PARTNER",
				Description: "Fee charged to partners for using instant payout service.",
				TaxType:     "GROSS",
				Source:      "PAYOUT",
			},
		},
	},
}
