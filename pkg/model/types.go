package model

import internalmodel "github.com/goliatone/go-apiref/internal/model"

type (
	SchemaType           = internalmodel.SchemaType
	ContentType          = internalmodel.ContentType
	RouteMethod          = internalmodel.RouteMethod
	RouteParameterSchema = internalmodel.RouteParameterSchema
	StringConstraints    = internalmodel.StringConstraints
	NumericConstraints   = internalmodel.NumericConstraints
	RouteParameter       = internalmodel.RouteParameter
	RouteParameters      = internalmodel.RouteParameters
	RouteResponse        = internalmodel.RouteResponse
	AuthScheme           = internalmodel.AuthScheme
	AuthRequirement      = internalmodel.AuthRequirement
	Authorization        = internalmodel.Authorization
	Route                = internalmodel.Route
	APIReferenceCore     = internalmodel.APIReferenceCore
	EmptyResultError     = internalmodel.EmptyResultError
)

const (
	SchemaTypeArray   = internalmodel.SchemaTypeArray
	SchemaTypeObject  = internalmodel.SchemaTypeObject
	SchemaTypeFile    = internalmodel.SchemaTypeFile
	SchemaTypeString  = internalmodel.SchemaTypeString
	SchemaTypeNumber  = internalmodel.SchemaTypeNumber
	SchemaTypeInteger = internalmodel.SchemaTypeInteger
	SchemaTypeBoolean = internalmodel.SchemaTypeBoolean
	SchemaTypeNull    = internalmodel.SchemaTypeNull
	SchemaTypeNever   = internalmodel.SchemaTypeNever
)

const (
	ContentTypeJSON       = internalmodel.ContentTypeJSON
	ContentTypeURLEncoded = internalmodel.ContentTypeURLEncoded
	ContentTypeMultipart  = internalmodel.ContentTypeMultipart
)

const (
	MethodGet     = internalmodel.MethodGet
	MethodPost    = internalmodel.MethodPost
	MethodPut     = internalmodel.MethodPut
	MethodPatch   = internalmodel.MethodPatch
	MethodDelete  = internalmodel.MethodDelete
	MethodHead    = internalmodel.MethodHead
	MethodOptions = internalmodel.MethodOptions
	MethodTrace   = internalmodel.MethodTrace
)

// StatusCatchAll is the status used for non numeric response keys.
const StatusCatchAll = internalmodel.StatusCatchAll

var (
	ErrEmptyResult = internalmodel.ErrEmptyResult
	ErrNilSpec     = internalmodel.ErrNilSpec
)

// DefaultMethods returns the default method visiting order.
func DefaultMethods() []RouteMethod {
	return append([]RouteMethod(nil), internalmodel.DefaultMethods...)
}

var (
	ArraySchema    = internalmodel.ArraySchema
	ObjectSchema   = internalmodel.ObjectSchema
	FileSchema     = internalmodel.FileSchema
	StringSchema   = internalmodel.StringSchema
	NumericSchema  = internalmodel.NumericSchema
	BooleanSchema  = internalmodel.BooleanSchema
	NullSchema     = internalmodel.NullSchema
	NeverSchema    = internalmodel.NeverSchema
	OtherSchema    = internalmodel.OtherSchema
	ParseMethod    = internalmodel.ParseMethod
	SplitTags      = internalmodel.SplitTags
	MapContentType = internalmodel.MapContentType
	StatusCode     = internalmodel.StatusCode
)
