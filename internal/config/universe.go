package config

// DefaultUniverse returns the built-in NSE F&O universe (208 stocks) with
// its sector classification. The India VIX index rides along for the
// fear-greed inputs but is excluded from breadth counting.
func DefaultUniverse() Universe {
	return Universe{
		VIXSymbol: "^INDIAVIX",
		Stocks:    append([]string(nil), fnoStocks...),
		Sectors:   copySectors(sectorMap),
	}
}

func copySectors(src map[string][]string) map[string][]string {
	out := make(map[string][]string, len(src))
	for k, v := range src {
		out[k] = append([]string(nil), v...)
	}
	return out
}

var fnoStocks = []string{
	"PGEL", "SIEMENS", "MCX", "PNBHOUSING", "JSWSTEEL",
	"NUVAMA", "VBL", "HUDCO", "PAYTM", "LTF",
	"SAIL", "SAMMAANCAP", "BPCL", "MANAPPURAM", "KALYANKJIL",
	"TATAPOWER", "RBLBANK", "DIXON", "CDSL", "GAIL",
	"HDFCLIFE", "UNOMINDA", "BAJAJFINSV", "360ONE", "TVSMOTOR",
	"SUZLON", "ABB", "BAJFINANCE", "GMRAIRPORT", "HINDPETRO",
	"BHEL", "IIFL", "JIOFIN", "INDIGO", "VEDL",
	"ANGELONE", "AMBER", "MFSL", "VOLTAS", "ADANIGREEN",
	"IGL", "CUMMINSIND", "JSWENERGY", "SHRIRAMFIN", "NMDC",
	"COFORGE", "ASHOKLEY", "DELHIVERY", "GRASIM", "GLENMARK",
	"IREDA", "TATATECH", "OBEROIRLTY", "UNITDSPR", "ADANIENSOL",
	"APLAPOLLO", "MAZDOCK", "JUBLFOOD", "TATASTEEL", "BOSCHLTD",
	"COALINDIA", "RELIANCE", "KPITTECH", "JINDALSTEL", "KFINTECH",
	"AXISBANK", "WIPRO", "SHREECEM", "TORNTPOWER", "INFY",
	"NBCC", "BDL", "HAL", "MARUTI", "BLUESTARCO",
	"UNIONBANK", "NATIONALUM", "HINDZINC", "KOTAKBANK", "LT",
	"CHOLAFIN", "IRCTC", "BSE", "AUROPHARMA", "SUNPHARMA",
	"PNB", "ICICIPRULI", "INDIANB", "TECHM", "ULTRACEMCO",
	"BHARATFORG", "DIVISLAB", "INOXWIND", "KEI", "ETERNAL",
	"ADANIPORTS", "SOLARINDS", "NCC", "UPL", "MOTHERSON",
	"HINDALCO", "HAVELLS", "LUPIN", "HFCL", "HDFCBANK",
	"LICHSGFIN", "TCS", "TATACHEM", "FORTIS", "PPLPHARMA",
	"POLYCAB", "CYIENT", "BIOCON", "RECLTD", "DLF",
	"ZYDUSLIFE", "TITAGARH", "INDUSINDBK", "IDFCFIRSTB", "BAJAJ-AUTO",
	"TATAELXSI", "ICICIBANK", "ALKEM", "ABCAPITAL", "CROMPTON",
	"BEL", "PIDILITIND", "MUTHOOTFIN", "POLICYBZR", "SONACOMS",
	"OFSS", "PHOENIXLTD", "IRFC", "TRENT", "BANKINDIA",
	"TITAN", "PETRONET", "IEX", "CIPLA", "NESTLEIND",
	"SUPREMEIND", "HCLTECH", "BANDHANBNK", "AUBANK", "YESBANK",
	"CAMS", "CANBK", "LTIM", "GODREJPROP", "DRREDDY",
	"ONGC", "LAURUSLABS", "EXIDEIND", "HEROMOTOCO", "IOC",
	"CGPOWER", "APOLLOHOSP", "GODREJCP", "COLPAL", "DMART",
	"AMBUJACEM", "MANKIND", "SYNGENE", "NTPC", "PRESTIGE",
	"NAUKRI", "CONCOR", "PERSISTENT", "INDHOTEL", "TATACONSUM",
	"OIL", "POWERGRID", "SRF", "ICICIGI", "DABUR",
	"SBICARD", "INDUSTOWER", "M&M", "HINDUNILVR", "HDFCAMC",
	"BANKBARODA", "MAXHEALTH", "MARICO", "ITC", "PAGEIND",
	"DALBHARAT", "KAYNES", "IDEA", "LODHA", "TORNTPHARM",
	"PFC", "NHPC", "BRITANNIA", "RVNL", "FEDERALBNK",
	"MPHASIS", "PATANJALI", "TIINDIA", "SBIN", "ASIANPAINT",
	"SBILIFE", "EICHERMOT", "PIIND", "LICI", "ASTRAL",
	"ADANIENT", "BHARTIARTL", "NYKAA",
}

var sectorMap = map[string][]string{
	"Bank": {
		"AXISBANK", "KOTAKBANK", "HDFCBANK", "ICICIBANK", "SBIN",
		"INDUSINDBK", "IDFCFIRSTB", "BANDHANBNK", "AUBANK", "YESBANK",
		"PNB", "CANBK", "UNIONBANK", "BANKINDIA", "BANKBARODA",
		"INDIANB", "FEDERALBNK", "RBLBANK",
	},
	"IT & Software": {
		"TCS", "INFY", "WIPRO", "HCLTECH", "TECHM",
		"LTIM", "COFORGE", "PERSISTENT", "MPHASIS", "KPITTECH",
		"TATAELXSI", "CYIENT", "OFSS",
	},
	"Auto & Auto Components": {
		"MARUTI", "TVSMOTOR", "BAJAJ-AUTO", "ASHOKLEY", "EICHERMOT",
		"M&M", "HEROMOTOCO", "EXIDEIND", "MOTHERSON", "BHARATFORG",
		"SONACOMS", "UNOMINDA",
	},
	"Metal & Mining": {
		"TATASTEEL", "JSWSTEEL", "HINDALCO", "VEDL", "JINDALSTEL",
		"SAIL", "COALINDIA", "NMDC", "NATIONALUM", "HINDZINC",
	},
	"Pharma & Healthcare": {
		"SUNPHARMA", "CIPLA", "DRREDDY", "DIVISLAB", "LUPIN",
		"BIOCON", "ALKEM", "AUROPHARMA", "TORNTPHARM", "GLENMARK",
		"ZYDUSLIFE", "LAURUSLABS", "MANKIND", "SYNGENE", "PPLPHARMA",
		"APOLLOHOSP", "MAXHEALTH", "FORTIS",
	},
	"Energy & Power": {
		"RELIANCE", "ONGC", "BPCL", "IOC", "HINDPETRO",
		"OIL", "GAIL", "IGL", "PETRONET", "NTPC",
		"POWERGRID", "TATAPOWER", "TORNTPOWER", "JSWENERGY", "ADANIGREEN",
		"ADANIENSOL", "SUZLON", "IREDA", "NHPC",
	},
	"FMCG & Consumer": {
		"HINDUNILVR", "ITC", "NESTLEIND", "BRITANNIA", "DABUR",
		"MARICO", "GODREJCP", "COLPAL", "TATACONSUM", "JUBLFOOD",
		"VBL", "PATANJALI",
	},
	"Infrastructure & Construction": {
		"LT", "NCC", "NBCC", "RVNL", "IRFC",
		"TITAGARH", "MAZDOCK", "ADANIPORTS", "CONCOR", "GMRAIRPORT",
	},
	"Real Estate": {
		"DLF", "GODREJPROP", "OBEROIRLTY", "PRESTIGE", "LODHA",
		"PHOENIXLTD",
	},
	"Financial Services": {
		"BAJFINANCE", "BAJAJFINSV", "SHRIRAMFIN", "CHOLAFIN", "MFSL",
		"LICHSGFIN", "MUTHOOTFIN", "MANAPPURAM", "ABCAPITAL", "IIFL",
		"PNBHOUSING", "HUDCO", "RECLTD", "PFC", "NUVAMA",
		"360ONE", "SAMMAANCAP", "ANGELONE",
	},
	"Insurance": {
		"SBILIFE", "HDFCLIFE", "ICICIPRULI", "ICICIGI", "LICI",
		"POLICYBZR",
	},
	"Capital Goods & Defense": {
		"SIEMENS", "ABB", "BHEL", "HAL", "BEL",
		"BDL", "CUMMINSIND", "BOSCHLTD", "VOLTAS", "BLUESTARCO",
		"CROMPTON", "HAVELLS", "POLYCAB", "KEI", "PGEL",
	},
	"Telecom": {
		"BHARTIARTL", "IDEA", "INDUSTOWER", "HFCL",
	},
	"Cement": {
		"ULTRACEMCO", "SHREECEM", "AMBUJACEM", "DALBHARAT",
	},
	"Chemicals": {
		"UPL", "SRF", "PIDILITIND", "TATACHEM",
	},
	"Retail & E-commerce": {
		"DMART", "TRENT", "NYKAA", "TITAN", "KALYANKJIL",
	},
	"Technology & Platforms": {
		"PAYTM", "NAUKRI", "JIOFIN", "INDIGO", "IRCTC",
		"DELHIVERY", "CDSL", "BSE", "MCX", "IEX",
		"KFINTECH", "CAMS",
	},
	"Industrials & Materials": {
		"GRASIM", "SUPREMEIND", "ASTRAL", "APLAPOLLO", "DIXON",
		"AMBER", "CGPOWER", "SOLARINDS", "INOXWIND", "ETERNAL",
		"KAYNES", "TATATECH", "UNITDSPR", "TIINDIA",
	},
	"Hospitality & Leisure": {
		"INDHOTEL",
	},
	"Asset Management": {
		"HDFCAMC",
	},
	"Diversified": {
		"LTF", "ADANIENT", "PIIND", "PAGEIND",
	},
}
