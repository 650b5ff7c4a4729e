package client

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"emvstash/internal/grpcproto"
	"emvstash/internal/token"
)

type GRPCClient struct {
	conn   *grpc.ClientConn
	client grpcproto.QREditClient
}

func NewGRPClient(address string) (*GRPCClient, error) {
	c := GRPCClient{}

	opts := []grpc.DialOption{
		grpc.WithPerRPCCredentials(&token.Tokens{}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}

	var err error
	c.conn, err = grpc.Dial(address, opts...)
	if err != nil {
		return nil, err
	}
	c.client = grpcproto.NewQREditClient(c.conn)

	return &c, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) Decode(ctx context.Context, payload string) (string, error) {
	resp, err := c.client.Decode(ctx, &grpcproto.DecodeRequest{
		Payload: payload,
	})

	if err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", errors.New("decode resp.Error: " + resp.Error)
	}

	return resp.Guid, nil
}

func (c *GRPCClient) Get(ctx context.Context, guid string) ([]*grpcproto.RecordData, error) {
	resp, err := c.client.Get(ctx, &grpcproto.GetRequest{
		Guid: guid,
	})

	if err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, errors.New("get resp.Error: " + resp.Error)
	}

	return resp.Records, nil
}

func (c *GRPCClient) Encode(ctx context.Context, guid string) (string, error) {
	resp, err := c.client.Encode(ctx, &grpcproto.EncodeRequest{
		Guid: guid,
	})

	if err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", errors.New("encode resp.Error: " + resp.Error)
	}

	return resp.Payload, nil
}

func (c *GRPCClient) Validate(ctx context.Context, guid string) (bool, error) {
	resp, err := c.client.Validate(ctx, &grpcproto.ValidateRequest{
		Guid: guid,
	})

	if err != nil {
		return false, err
	}

	return resp.Valid, nil
}

func (c *GRPCClient) Recompute(ctx context.Context, guid string) (string, error) {
	resp, err := c.client.Recompute(ctx, &grpcproto.RecomputeRequest{
		Guid: guid,
	})

	if err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", errors.New("recompute resp.Error: " + resp.Error)
	}

	return resp.Checksum, nil
}

func (c *GRPCClient) SetValue(ctx context.Context, guid string, path []string, value string) error {
	resp, err := c.client.SetValue(ctx, &grpcproto.SetValueRequest{
		Guid:  guid,
		Path:  path,
		Value: value,
	})

	if err != nil {
		return err
	}
	if resp.Error != "" {
		return errors.New("setvalue resp.Error: " + resp.Error)
	}

	return nil
}

func (c *GRPCClient) InsertField(ctx context.Context, guid string, parentPath []string, id string) error {
	resp, err := c.client.InsertField(ctx, &grpcproto.InsertFieldRequest{
		Guid:       guid,
		ParentPath: parentPath,
		Id:         id,
	})

	if err != nil {
		return err
	}
	if resp.Error != "" {
		return errors.New("insertfield resp.Error: " + resp.Error)
	}

	return nil
}

func (c *GRPCClient) DeleteField(ctx context.Context, guid string, path []string) error {
	resp, err := c.client.DeleteField(ctx, &grpcproto.DeleteFieldRequest{
		Guid: guid,
		Path: path,
	})

	if err != nil {
		return err
	}
	if resp.Error != "" {
		return errors.New("deletefield resp.Error: " + resp.Error)
	}

	return nil
}

func (c *GRPCClient) AllowedFields(ctx context.Context, parentPath []string) ([]string, error) {
	resp, err := c.client.AllowedFields(ctx, &grpcproto.AllowedFieldsRequest{
		ParentPath: parentPath,
	})

	if err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, errors.New("allowedfields resp.Error: " + resp.Error)
	}

	return resp.Ids, nil
}

func (c *GRPCClient) Remove(ctx context.Context, guid string) error {
	resp, err := c.client.Remove(ctx, &grpcproto.RemoveRequest{
		Guid: guid,
	})

	if err != nil {
		return err
	}
	if resp.Error != "" {
		return errors.New("remove resp.Error: " + resp.Error)
	}

	return nil
}
