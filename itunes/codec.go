package itunes

import (
	"bytes"
	"strings"

	"gitee.com/kxapp/kxapp-common/errorz"
	jsoniter "github.com/json-iterator/go"
	"howett.net/plist"
)

// Document is the in memory form of a store wire body: field name to
// string, integer, boolean, nested Document or nested sequence.
type Document = map[string]any

/*
req must be marshalable by plist; maps and value structs work, pointers
do not.
*/
func encodePlist(doc Document) ([]byte, *errorz.StatusError) {
	data, e := plist.MarshalIndent(doc, plist.XMLFormat, "\t")
	if e != nil {
		return nil, errorz.NewParseDataError(e)
	}
	return data, nil
}

func decodePlist(data []byte) (Document, *errorz.StatusError) {
	var doc Document
	_, e := plist.Unmarshal(data, &doc)
	if e != nil {
		return nil, errorz.NewParseDataError(e)
	}
	return doc, nil
}

func decodeJSON(data []byte) (Document, *errorz.StatusError) {
	var doc Document
	if e := jsoniter.Unmarshal(data, &doc); e != nil {
		return nil, errorz.NewParseDataError(e)
	}
	return doc, nil
}

/*
*
decodeBody picks the codec from the response shape. The fast signin
endpoint answers plist, but some error paths of the same host answer
JSON; both decode into the same Document.
*/
func decodeBody(contentType string, body []byte) (Document, *errorz.StatusError) {
	trimmed := bytes.TrimSpace(body)
	if strings.Contains(contentType, "json") || (len(trimmed) > 0 && trimmed[0] == '{') {
		return decodeJSON(trimmed)
	}
	return decodePlist(body)
}
