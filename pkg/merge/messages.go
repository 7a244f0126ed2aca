package merge

// Sink and error messages
const (
	MsgErrorPrefix        = "Error: "
	MsgFileDoesNotExist   = "File does not exist: %s"
	MsgTextOrPathRequired = `Either "text" or a valid "path" must be provided.`
	MsgLabelRequired      = `A non-empty "label" must be provided.`
	MsgWriteFile          = "Error writing to file: %s"
	MsgUnknownWrite       = "Unknown error writing to file."
	MsgUnknownRead        = "It never happened before, and here we go again."
	MsgFileGenerated      = "File %s generated successfully."
)
