package sdk

// Address is a chain account or contract identifier, e.g. "hive:someone".
type Address string
