package db

// GetDBTX returns the connection or transaction the queries run against.
func (q *Queries) GetDBTX() DBTX {
	return q.db
}
