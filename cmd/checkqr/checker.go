package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"github.com/golang/protobuf/proto"

	"emvstash/internal/client"
	"emvstash/internal/grpcproto"
)

const (
	displayCounter = 100
)

type simplePayload struct {
	payload string
	guid    string
	removed bool
}

func (s simplePayload) String() string {
	if s.guid == "" {
		return "uninitialized"
	}
	return fmt.Sprintf("guid=%s removed=%v payload=%s", s.guid, s.removed, s.payload)
}

// newSimplePayload builds a random static or dynamic payload with a
// zeroed checksum. The server side is expected to repair it.
func newSimplePayload() simplePayload {
	i := rand.Intn(100)

	poi := "11"
	if i%2 == 0 {
		poi = "12"
	}
	payload := "000201" + "0102" + poi

	account := "0010A000000727" + "0127" + "0006970436" + "0113" + fmt.Sprintf("%013d", i) + "0208QRIBFTTA"
	payload += "38" + strconv.Itoa(len(account)) + account

	payload += "5303704"
	if poi == "12" {
		amount := strconv.Itoa(10000 + i)
		payload += "54" + fmt.Sprintf("%02d", len(amount)) + amount
	}
	payload += "5802VN" + "63040000"

	return simplePayload{payload: payload}
}

type Checker struct {
	toDisplay chan string

	toEdit     chan simplePayload
	toRemove   chan simplePayload
	toGetAfter chan simplePayload

	wg sync.WaitGroup

	client *client.GRPCClient
	sugar  *zap.SugaredLogger
}

func NewChecker(address string, logger *zap.Logger) (*Checker, error) {
	c, err := client.NewGRPClient(address)
	if err != nil {
		return nil, err
	}

	return &Checker{
		client:     c,
		sugar:      logger.Sugar(),
		toDisplay:  make(chan string),
		toEdit:     make(chan simplePayload),
		toRemove:   make(chan simplePayload),
		toGetAfter: make(chan simplePayload),
	}, nil
}

func (c *Checker) Go(ctx context.Context) {
	c.wg.Add(10)

	go c.display(ctx)
	go c.display(ctx)

	go c.decode(ctx)
	go c.decode(ctx)
	go c.edit(ctx)
	go c.edit(ctx)
	go c.remove(ctx)
	go c.remove(ctx)
	go c.getAfter(ctx)
	go c.getAfter(ctx)
}

func (c *Checker) Wait() error {
	c.wg.Wait()
	return c.client.Close()
}

func (c *Checker) display(ctx context.Context) {
	defer c.wg.Done()
	c.sugar.Infow("display start")

	for {
		select {
		case <-ctx.Done():
			c.sugar.Infow("display done")
			return
		case s := <-c.toDisplay:
			c.sugar.Debugw("toDisplay", "s", s)
			n, err := fmt.Fprint(os.Stdout, s)
			if err != nil {
				c.sugar.Fatalw("fprintf stdout", "err", err, "n", n)
			}
		}
	}
}

func (c *Checker) decode(ctx context.Context) {
	defer c.wg.Done()

	count := 0
	c.sugar.Infow("decode start")

	for {
		select {
		case <-ctx.Done():
			c.sugar.Infow("decode done")
			return
		default:
			rec := newSimplePayload()
			var err error
			rec.guid, err = c.client.Decode(ctx, rec.payload)
			if err != nil {
				c.sugar.Fatalw("decode", "error", err, "payload", rec.payload)
			}

			cs, err := c.client.Recompute(ctx, rec.guid)
			if err != nil {
				c.sugar.Fatalw("recompute", "error", err, "rec", rec)
			}
			rec.payload = rec.payload[:len(rec.payload)-4] + cs

			valid, err := c.client.Validate(ctx, rec.guid)
			if err != nil {
				c.sugar.Fatalw("validate", "error", err, "rec", rec)
			}
			if !valid {
				c.sugar.Errorw("invalid after recompute", "rec", rec)
			}

			count++
			if count == displayCounter {
				count = 0
				c.toDisplay <- "D"
			}
			c.toEdit <- rec
		}
	}
}

func (c *Checker) edit(ctx context.Context) {
	defer c.wg.Done()

	c.sugar.Infow("edit start")
	count := 0

	for {
		select {
		case <-ctx.Done():
			c.sugar.Infow("edit done")
			return

		case rec := <-c.toEdit:
			c.sugar.Debugw("edit <-toEdit", "rec", rec)

			var err error
			switch rand.Intn(3) {
			case 0:
				if err = c.client.InsertField(ctx, rec.guid, nil, "59"); err == nil {
					err = c.client.SetValue(ctx, rec.guid, []string{"59"}, "NGUYEN VAN A")
				}
			case 1:
				err = c.client.SetValue(ctx, rec.guid, []string{"38", "01", "01"}, "0999999999")
			default:
				// delete and re-add must restore the original wire form
				if err = c.client.DeleteField(ctx, rec.guid, []string{"58"}); err == nil {
					if err = c.client.InsertField(ctx, rec.guid, nil, "58"); err == nil {
						err = c.client.SetValue(ctx, rec.guid, []string{"58"}, "VN")
					}
				}
				if err == nil {
					var payload string
					payload, err = c.client.Encode(ctx, rec.guid)
					if err == nil && payload != rec.payload {
						c.sugar.Errorw("delete/re-add changed encoding", "rec", rec, "payload", payload)
					}
				}
			}
			if err != nil {
				c.sugar.Fatalw("edit", "error", err, "rec", rec)
			}

			valid, err := c.client.Validate(ctx, rec.guid)
			if err != nil {
				c.sugar.Fatalw("edit validate", "error", err, "rec", rec)
			}
			if !valid {
				c.sugar.Errorw("invalid after edit", "rec", rec)
			}

			c.roundTrip(ctx, rec)

			count++
			if count == displayCounter {
				count = 0
				c.toDisplay <- "E"
			}
			c.toRemove <- rec
		}
	}
}

// roundTrip encodes the edited tree, decodes the wire form into a
// second payload and checks both trees match record for record.
func (c *Checker) roundTrip(ctx context.Context, rec simplePayload) {
	payload, err := c.client.Encode(ctx, rec.guid)
	if err != nil {
		c.sugar.Fatalw("roundtrip encode", "error", err, "rec", rec)
	}

	guid, err := c.client.Decode(ctx, payload)
	if err != nil {
		c.sugar.Fatalw("roundtrip decode", "error", err, "payload", payload)
	}
	defer func() {
		if err := c.client.Remove(ctx, guid); err != nil {
			c.sugar.Errorw("roundtrip remove", "error", err, "guid", guid)
		}
	}()

	before, err := c.client.Get(ctx, rec.guid)
	if err != nil {
		c.sugar.Fatalw("roundtrip get", "error", err, "rec", rec)
	}
	after, err := c.client.Get(ctx, guid)
	if err != nil {
		c.sugar.Fatalw("roundtrip get", "error", err, "guid", guid)
	}

	c.compare(rec.guid, before, after)
}

func (c *Checker) remove(ctx context.Context) {
	defer c.wg.Done()

	c.sugar.Infow("remove start")
	count := 0

	for {
		select {
		case <-ctx.Done():
			c.sugar.Infow("remove done")
			return
		case rec := <-c.toRemove:
			c.sugar.Debugw("remove <-toRemove", "rec", rec)
			err := c.client.Remove(ctx, rec.guid)
			if err != nil && !rec.removed {
				c.sugar.Fatalw("remove", "error", err)
			}

			rec.removed = true
			c.sugar.Debugw("remove ok", "rec", rec)

			c.toGetAfter <- rec

			count++
			if count == displayCounter {
				count = 0
				c.toDisplay <- "R"
			}
		}
	}
}

func (c *Checker) getAfter(ctx context.Context) {
	defer c.wg.Done()

	c.sugar.Infow("getAfter start")
	count := 0

	for {
		select {
		case <-ctx.Done():
			c.sugar.Infow("getAfter done")
			return

		case rec := <-c.toGetAfter:
			c.sugar.Debugw("getAfter <-toGetAfter", "rec", rec)
			_, err := c.client.Get(ctx, rec.guid)
			if err == nil && rec.removed {
				c.sugar.Errorw("get after remove succeeded", "rec", rec)
			}

			count++
			if count == displayCounter {
				count = 0
				c.toDisplay <- "A"
			}
		}
	}
}

func (c *Checker) compare(guid string, before []*grpcproto.RecordData, after []*grpcproto.RecordData) {
	if len(before) != len(after) {
		c.sugar.Errorw("wrong length", "guid", guid, "before", len(before), "after", len(after))
		return
	}
	for i := range before {
		if !proto.Equal(before[i], after[i]) {
			c.sugar.Errorw("not equal", "guid", guid, "before", before[i], "after", after[i])
		}
	}
}
