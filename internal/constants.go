package internal

const (
	// ApplicationName is the non-capitalized name of the application (do not change this)
	ApplicationName = "wisesaying"

	// DataFileName is the name of the exported saying document written by the build command
	DataFileName = "data.json"

	// LastIDFileName holds the most recently assigned saying id for file backed stores
	LastIDFileName = "lastId.txt"
)
