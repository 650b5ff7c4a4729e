package qrserver

import (
	"context"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"emvstash/internal/config"
	"emvstash/internal/grpcproto"
	"emvstash/internal/qrcodec"
	"emvstash/internal/qrstore"
)

var (
	errMissingMetadata = status.Errorf(codes.InvalidArgument, "missing metadata")
)

type GRPCServer struct {
	grpcproto.UnimplementedQREditServer

	store *qrstore.Store
	sugar *zap.SugaredLogger
	gserv *grpc.Server
	conf  *config.Config

	wg sync.WaitGroup
}

func NewQREditServer(store *qrstore.Store, conf *config.Config, logger *zap.Logger) *GRPCServer {
	return &GRPCServer{
		store: store,
		conf:  conf,
		sugar: logger.Sugar(),
	}
}

func (ss *GRPCServer) Start(ctx context.Context) error {
	opts := []grpc.ServerOption{
		grpc.UnaryInterceptor(ss.ensureValidToken),
	}

	ss.gserv = grpc.NewServer(opts...)
	grpcproto.RegisterQREditServer(ss.gserv, ss)
	ss.sugar.Infow("gprcserver start", "address", ss.conf.Address)

	lis, err := net.Listen("tcp", ss.conf.Address)
	if err != nil {
		return err
	}

	go ss.saveToDisk(ctx)
	go ss.gracefulStop(ctx)

	return ss.gserv.Serve(lis)
}

func (ss *GRPCServer) saveToDisk(ctx context.Context) {
	if ss.conf.StoreInterval == 0 {
		return
	}

	ss.wg.Add(1)
	defer ss.wg.Done()

	ticker := time.NewTicker(ss.conf.StoreInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := ss.store.SaveToDisk(ctx)
			if err != nil {
				ss.sugar.Errorw("store.SaveToDisk", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (ss *GRPCServer) gracefulStop(ctx context.Context) {
	ss.wg.Add(1)
	defer ss.wg.Done()

	<-ctx.Done()
	ss.gserv.GracefulStop()
}

func (ss *GRPCServer) Wait() {
	ss.wg.Wait()
}

func (ss *GRPCServer) ensureValidToken(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, errMissingMetadata
	}
	// The keys within metadata.MD are normalized to lowercase.
	// See: https://godoc.org/google.golang.org/grpc/metadata#New
	ss.sugar.Debugw("ensureValidToken", "token", md["authorization"])

	return handler(ctx, req)
}

func (ss *GRPCServer) Decode(ctx context.Context, in *grpcproto.DecodeRequest) (*grpcproto.DecodeResponse, error) {
	var resp grpcproto.DecodeResponse

	guid, err := ss.store.Decode(in.GetPayload())
	if err != nil {
		resp.Error = err.Error()
		return &resp, nil
	}
	resp.Guid = string(guid)

	return &resp, nil
}

func (ss *GRPCServer) Get(ctx context.Context, in *grpcproto.GetRequest) (*grpcproto.GetResponse, error) {
	var resp grpcproto.GetResponse

	tree, err := ss.store.Get(qrstore.GUIDType(in.GetGuid()))
	if err != nil {
		resp.Error = err.Error()
		return &resp, nil
	}

	resp.Records = make([]*grpcproto.RecordData, 0, len(tree))
	for _, rec := range tree {
		resp.Records = append(resp.Records, toRecordData(rec))
	}
	return &resp, nil
}

func (ss *GRPCServer) Encode(ctx context.Context, in *grpcproto.EncodeRequest) (*grpcproto.EncodeResponse, error) {
	var resp grpcproto.EncodeResponse

	payload, err := ss.store.Encode(qrstore.GUIDType(in.GetGuid()))
	if err != nil {
		resp.Error = err.Error()
		return &resp, nil
	}
	resp.Payload = payload

	return &resp, nil
}

func (ss *GRPCServer) Validate(ctx context.Context, in *grpcproto.ValidateRequest) (*grpcproto.ValidateResponse, error) {
	var resp grpcproto.ValidateResponse

	err := ss.store.Validate(qrstore.GUIDType(in.GetGuid()))
	switch {
	case err == nil:
		resp.Valid = true
	default:
		resp.Error = err.Error()
	}

	return &resp, nil
}

func (ss *GRPCServer) Recompute(ctx context.Context, in *grpcproto.RecomputeRequest) (*grpcproto.RecomputeResponse, error) {
	var resp grpcproto.RecomputeResponse

	cs, err := ss.store.Recompute(qrstore.GUIDType(in.GetGuid()))
	if err != nil {
		resp.Error = err.Error()
		return &resp, nil
	}
	resp.Checksum = cs

	return &resp, nil
}

func (ss *GRPCServer) SetValue(ctx context.Context, in *grpcproto.SetValueRequest) (*grpcproto.EditResponse, error) {
	var resp grpcproto.EditResponse

	err := ss.store.SetValue(qrstore.GUIDType(in.GetGuid()), in.GetPath(), in.GetValue())
	if err != nil {
		resp.Error = err.Error()
	}

	return &resp, nil
}

func (ss *GRPCServer) InsertField(ctx context.Context, in *grpcproto.InsertFieldRequest) (*grpcproto.EditResponse, error) {
	var resp grpcproto.EditResponse

	err := ss.store.InsertField(qrstore.GUIDType(in.GetGuid()), in.GetParentPath(), in.GetId())
	if err != nil {
		resp.Error = err.Error()
	}

	return &resp, nil
}

func (ss *GRPCServer) DeleteField(ctx context.Context, in *grpcproto.DeleteFieldRequest) (*grpcproto.EditResponse, error) {
	var resp grpcproto.EditResponse

	err := ss.store.DeleteField(qrstore.GUIDType(in.GetGuid()), in.GetPath())
	if err != nil {
		resp.Error = err.Error()
	}

	return &resp, nil
}

func (ss *GRPCServer) AllowedFields(ctx context.Context, in *grpcproto.AllowedFieldsRequest) (*grpcproto.AllowedFieldsResponse, error) {
	var resp grpcproto.AllowedFieldsResponse

	resp.Ids = ss.store.AllowedFields(in.GetParentPath())

	return &resp, nil
}

func (ss *GRPCServer) Remove(ctx context.Context, in *grpcproto.RemoveRequest) (*grpcproto.RemoveResponse, error) {
	var resp grpcproto.RemoveResponse

	err := ss.store.Remove(qrstore.GUIDType(in.GetGuid()))
	if err != nil {
		resp.Error = err.Error()
	}

	return &resp, nil
}

func toRecordData(rec qrcodec.Record) *grpcproto.RecordData {
	out := &grpcproto.RecordData{
		Id:          rec.ID,
		Length:      rec.Length,
		Value:       rec.Value,
		Name:        rec.Name,
		Description: rec.Description,
		Format:      rec.Format,
	}
	if rec.Children != nil {
		out.Children = make([]*grpcproto.RecordData, 0, len(rec.Children))
		for _, child := range rec.Children {
			out.Children = append(out.Children, toRecordData(child))
		}
	}
	return out
}
