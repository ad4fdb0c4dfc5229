package usecase

var (
	CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable
	FormatUSDForTest                   = formatUSD
)
