package local
import (
	"fmt"
	"errors"
	"net/http"
	"encoding/json"

	"pbridge/patterns"
	"pbridge/stegano/text"
)

func writeJsonResponse( w http.ResponseWriter, status int, resp any ) {
	data, err := json.Marshal( resp )
	if err != nil {
		http.Error( w, "Internal Server Error", http.StatusInternalServerError )
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader( status )
	w.Write( data )
}

// reads a JSON body no larger than limit into v.
func readRequest( w http.ResponseWriter, r *http.Request, limit int64, v any ) (int, string, error) {
	if r == nil || r.Body == nil {
		return http.StatusBadRequest, KindBadRequest, fmt.Errorf("Empty request")
	}
	defer r.Body.Close()

	dec := json.NewDecoder( http.MaxBytesReader( w, r.Body, limit ) )
	if err := dec.Decode( v ); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As( err, &tooLarge ) {
			return http.StatusRequestEntityTooLarge, KindTooLarge,
				fmt.Errorf("Request body is larger than %d bytes", tooLarge.Limit)
		}
		return http.StatusBadRequest, KindBadRequest, fmt.Errorf("Invalid request: JSON format required")
	}
	return http.StatusOK, "", nil
}

// maps codec and registry errors to the kinds clients see
func errorKind( err error ) string {
	switch {
	case errors.Is( err, patterns.ErrUnknownCodec ):
		return KindUnknownCodec
	case errors.Is( err, text.ErrInvalidCarrier ):
		return KindInvalidCarrier
	case errors.Is( err, text.ErrInvalidByteSequence ):
		return KindInvalidByteSequence
	case errors.Is( err, text.ErrInvalidMessage ):
		return KindInvalidMessage
	case errors.Is( err, text.ErrUnencodable ):
		return KindUnencodable
	}
	return KindBadRequest
}

func encoderType( name string ) string {
	if name == "" {
		return DefaultEncoderType
	}
	return name
}

func(s *Server) handleEncode( w http.ResponseWriter, r *http.Request ) {
	var req EncodeRequest
	if status, kind, err := readRequest( w, r, s.maxBody, &req ); err != nil {
		writeJsonResponse( w, status, EncodeResponse{ Errors: []string{ err.Error() }, ErrorKind: kind } )
		return
	}

	name := encoderType( req.EncoderType )
	encoded, description, err := s.registry.Encode( name, req.Message )
	if err != nil {
		s.logger.LogWarning( fmt.Sprintf("encode with %q failed: %v", name, err) )
		writeJsonResponse( w, http.StatusBadRequest, EncodeResponse{
			Errors: []string{ err.Error() },
			ErrorKind: errorKind( err ),
		})
		return
	}
	s.logger.LogInfo( fmt.Sprintf("encoded %d bytes with %q into %d bytes", len(req.Message), name, len(encoded)) )
	writeJsonResponse( w, http.StatusOK, EncodeResponse{
		Encoded: encoded,
		PatternDescription: description,
		Errors: []string{},
	})
}

func(s *Server) handleDecode( w http.ResponseWriter, r *http.Request ) {
	var req DecodeRequest
	if status, kind, err := readRequest( w, r, s.maxBody, &req ); err != nil {
		writeJsonResponse( w, status, DecodeResponse{ Errors: []string{ err.Error() }, ErrorKind: kind } )
		return
	}

	name := encoderType( req.EncoderType )
	decoded, err := s.registry.Decode( name, req.Content )
	if err != nil {
		s.logger.LogWarning( fmt.Sprintf("decode with %q failed: %v", name, err) )
		writeJsonResponse( w, http.StatusBadRequest, DecodeResponse{
			Errors: []string{ err.Error() },
			ErrorKind: errorKind( err ),
		})
		return
	}
	// there is no real confidence estimation, a successful decode is exact
	confidence := 1.0
	s.logger.LogInfo( fmt.Sprintf("decoded %d bytes with %q", len(decoded), name) )
	writeJsonResponse( w, http.StatusOK, DecodeResponse{
		Decoded: decoded,
		Confidence: &confidence,
		Errors: []string{},
	})
}

func(s *Server) handlePatterns( w http.ResponseWriter, r *http.Request ) {
	writeJsonResponse( w, http.StatusOK, s.registry.List() )
}

func(s *Server) handleInspect( w http.ResponseWriter, r *http.Request ) {
	var req InspectRequest
	if status, _, err := readRequest( w, r, s.maxBody, &req ); err != nil {
		writeJsonResponse( w, status, InspectResponse{
			TableInfo: text.TableInfo{ Alignments: []string{} },
			Errors: []string{ err.Error() },
		})
		return
	}
	writeJsonResponse( w, http.StatusOK, InspectResponse{
		TableInfo: text.InspectTable( req.Content ),
		Errors: []string{},
	})
}
