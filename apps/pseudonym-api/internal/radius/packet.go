// Package radius はRADIUSパケットの属性を展開関数の入力として提供する。
package radius

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/eap"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/xlat"
	"layeh.com/radius"
	"layeh.com/radius/rfc2865"
	"layeh.com/radius/rfc2869"
)

// 展開関数から参照できる属性名
const (
	AttrUserName         = "User-Name"
	AttrCallingStation   = "Calling-Station-Id"
	AttrCalledStation    = "Called-Station-Id"
	AttrNASIdentifier    = "NAS-Identifier"
	AttrEAPMessage       = "EAP-Message"
	AttrEAPIdentity      = "EAP-Identity"
	AttrEAPType          = "EAP-Type"
	AttrEAPID            = "EAP-Id"
	requestListQualifier = "request:"
)

// ErrInvalidPacket はRADIUSパケットの解析に失敗した場合のエラー
var ErrInvalidPacket = errors.New("invalid RADIUS packet")

// PacketResolver はRADIUSパケットの属性を返すxlat.Resolver
type PacketResolver struct {
	packet *radius.Packet
}

// NewPacketResolver はバイト列のRADIUSパケットを解析してPacketResolverを生成する。
func NewPacketResolver(b, secret []byte) (*PacketResolver, error) {
	p, err := radius.Parse(b, secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPacket, err)
	}
	return &PacketResolver{packet: p}, nil
}

// Resolve はxlat.Resolverインターフェースを実装する。
func (r *PacketResolver) Resolve(_ context.Context, name string) ([]byte, error) {
	name = strings.TrimPrefix(name, requestListQualifier)

	var (
		v   []byte
		err error
	)
	switch name {
	case AttrUserName:
		v, err = rfc2865.UserName_Lookup(r.packet)
	case AttrCallingStation:
		v, err = rfc2865.CallingStationID_Lookup(r.packet)
	case AttrCalledStation:
		v, err = rfc2865.CalledStationID_Lookup(r.packet)
	case AttrNASIdentifier:
		v, err = rfc2865.NASIdentifier_Lookup(r.packet)
	case AttrEAPMessage:
		v, err = GetEAPMessage(r.packet)
	case AttrEAPIdentity:
		v, err = GetEAPIdentity(r.packet)
	case AttrEAPType, AttrEAPID:
		var h eap.Header
		if h, err = getEAPHeader(r.packet); err == nil {
			n := h.Type
			if name == AttrEAPID {
				n = h.Identifier
			}
			v = strconv.AppendUint(nil, uint64(n), 10)
		}
	default:
		return nil, fmt.Errorf("%w: %s", xlat.ErrAttributeNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", xlat.ErrAttributeNotFound, name)
	}
	return v, nil
}

// GetEAPMessage は全EAP-Message属性を受信順に結合して返す（RFC 3579）。
func GetEAPMessage(p *radius.Packet) ([]byte, error) {
	msg, err := rfc2869.EAPMessage_Lookup(p)
	if err != nil {
		return nil, err
	}
	if len(msg) == 0 {
		return nil, radius.ErrNoAttribute
	}
	return msg, nil
}

// GetEAPIdentity はEAP-Message内のEAP-Response/IdentityからIdentityを取り出す。
func GetEAPIdentity(p *radius.Packet) ([]byte, error) {
	msg, err := GetEAPMessage(p)
	if err != nil {
		return nil, err
	}
	id, ok := eap.ExtractIdentity(msg)
	if !ok {
		return nil, radius.ErrNoAttribute
	}
	return id, nil
}

// getEAPHeader はEAP-MessageのEAPヘッダを返す
func getEAPHeader(p *radius.Packet) (eap.Header, error) {
	msg, err := GetEAPMessage(p)
	if err != nil {
		return eap.Header{}, err
	}
	h, ok := eap.ParseHeader(msg)
	if !ok {
		return eap.Header{}, radius.ErrNoAttribute
	}
	return h, nil
}
