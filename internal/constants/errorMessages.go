package constants

const (
	ErrTitleValidation       = "Validation Failed"
	ErrTitleMalformed        = "Malformed JSON"
	ErrTitleNotFound         = "Not Found"
	ErrTitleInvalidArgument  = "Invalid Argument"
	ErrTitleInternal         = "Internal Server Error"
	ErrTitleMethodNotAllowed = "Method Not Allowed"
	ErrTitleTooManyRequests  = "Too Many Requests"
)

const (
	MsgValidationFailed = "Campos obrigatórios ausentes ou incorretos"
	MsgMalformedJSON    = "Erro na formatação do JSON"
	MsgInvalidBrand     = "Marca inválida. Use: EMBRAER, BOEING ou AIRBUS."
	MsgYearInFuture     = "O ano de fabricação não pode ser maior que o ano atual."
	MsgInvalidID        = "ID inválido"
	MsgInternalError    = "the server encountered a problem and could not process your request"
	MsgRouteNotFound    = "the requested resource could not be found"
	MsgMethodNotAllowed = "the method is not supported for this resource"
	MsgTooManyRequests  = "rate limit exceeded"
	MsgAircraftNotFound = "Aircraft not found with ID: %d"
	MsgUpdateNotFound   = "Aircraft not found for update with ID: %d"
	MsgDeletionNotFound = "Aircraft not found for deletion with ID: %d"
)

// FieldRequiredMessages holds the per-field text reported in the details list
var FieldRequiredMessages = map[string]string{
	"name":        "Name is required",
	"brand":       "Brand is required",
	"year":        "Year is required",
	"description": "Description is required",
}
