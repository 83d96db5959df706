package converter

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// StructToSolveRequest decodes a gRPC Struct into a SolveRequest
func StructToSolveRequest(s *structpb.Struct) (*SolveRequest, error) {
	if s == nil {
		return nil, fmt.Errorf("empty request")
	}
	data, err := protojson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return DecodeSolveRequest(data)
}

// DecodeSolveRequest decodes a JSON SolveRequest
func DecodeSolveRequest(data []byte) (*SolveRequest, error) {
	req := &SolveRequest{}
	if err := json.Unmarshal(data, req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	if req.MissionID <= 0 {
		return nil, fmt.Errorf("decode request: missing missionId")
	}
	return req, nil
}

// SolveRequestToStruct encodes a SolveRequest as a gRPC Struct
func SolveRequestToStruct(req *SolveRequest) (*structpb.Struct, error) {
	return toStruct(req)
}

// SolveResponseToStruct encodes a SolveResponse as a gRPC Struct
func SolveResponseToStruct(resp *SolveResponse) (*structpb.Struct, error) {
	return toStruct(resp)
}

// StructToSolveResponse decodes a gRPC Struct into a SolveResponse
func StructToSolveResponse(s *structpb.Struct) (*SolveResponse, error) {
	data, err := protojson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	resp := &SolveResponse{}
	if err := json.Unmarshal(data, resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return resp, nil
}

func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("convert %T: %w", v, err)
	}
	return s, nil
}
