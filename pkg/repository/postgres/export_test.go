package postgres

const (
	SQLPutRepositoryForTest        = sqlPutRepository
	SQLSelectRepositoryForTest     = sqlSelectRepository
	SQLUpdateInstallationIDForTest = sqlUpdateInstallationID
	SQLInsertAnalysisForTest       = sqlInsertAnalysis
	SQLSelectAnalysisForTest       = sqlSelectAnalysis
	SQLInsertDeliveryForTest       = sqlInsertDelivery
	SQLSelectDeliveryForTest       = sqlSelectDelivery
	SQLUpdateDeliveryForTest       = sqlUpdateDelivery
)
