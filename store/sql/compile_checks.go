package sqlstore

var (
	_ Dialect = sqlServerDialect{}
	_ Dialect = oracleDialect{}
	_ Dialect = db2Dialect{}
	_ Dialect = postgresDialect{}
)
