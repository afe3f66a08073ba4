// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package classifier

import (
	"strconv"

	"github.com/cise-syslog/ingestd/internal/extractor"
	"github.com/cise-syslog/ingestd/internal/model"
)

// buildRow assembles a ClassifiedRow's Values in the exact column order
// model.TableSchemas defines for target, given the message's source IP,
// its resolved timestamp, and the fields the extractor pulled out of it.
func buildRow(target model.Family, sourceIP, timestamp string, f extractor.Fields) model.ClassifiedRow {
	var values []any
	switch target {
	case model.FTA:
		values = []any{
			timestamp,
			sourceIP,
			f.Get(extractor.FieldUserName),
			f.Get(extractor.FieldDeviceIPAddress),
			f.Get(extractor.FieldRemoteAddress),
			f.Get(extractor.FieldFailureReason),
			f.Get(extractor.FieldNetworkDeviceName),
			intOrNil(f.Get(extractor.FieldRequestLatency)),
		}
	case model.FWA:
		values = []any{
			timestamp,
			sourceIP,
			f.Get(extractor.FieldUserName),
			f.Get(extractor.FieldNASIPAddress),
			f.Get(extractor.FieldCalledStationID),
			f.Get(extractor.FieldFailureReason),
			f.Get(extractor.FieldNetworkDeviceName),
		}
	case model.FLA:
		values = []any{
			timestamp,
			sourceIP,
			f.Get(extractor.FieldUserName),
			f.Get(extractor.FieldNASIPAddress),
			f.Get(extractor.FieldNASPortID),
			f.Get(extractor.FieldFailureReason),
			f.Get(extractor.FieldNetworkDeviceName),
		}
	case model.PWA:
		values = []any{
			timestamp,
			sourceIP,
			f.Get(extractor.FieldNASIPAddress),
			f.Get(extractor.FieldNetworkDeviceName),
			intOrNil(f.Get(extractor.FieldRequestLatency)),
			f.Get(extractor.FieldCiscoAVPairMethod),
			f.Get(extractor.FieldUserName),
			f.Get(extractor.FieldAuthenticationMethod),
			f.Get(extractor.FieldAuthenticationIdentityStore),
			f.Get(extractor.FieldSelectedAccessService),
			f.Get(extractor.FieldSelectedAuthorizationProfiles),
			f.Get(extractor.FieldIdentityGroup),
			f.Get(extractor.FieldSelectedAuthenticationIDStores),
			f.Get(extractor.FieldAuthenticationStatus),
			f.Get(extractor.FieldNDLocation),
			f.Get(extractor.FieldNDDeviceType),
			f.Get(extractor.FieldNDRolloutStage),
			f.Get(extractor.FieldNDReauthController),
			f.Get(extractor.FieldNDClosedMode),
			f.Get(extractor.FieldIdentityPolicyMatchedRule),
			f.Get(extractor.FieldAuthorizationPolicyMatchedRule),
			f.Get(extractor.FieldSubjectCommonName),
			f.Get(extractor.FieldEndPointMACAddress),
			f.Get(extractor.FieldISEPolicySetName),
			f.Get(extractor.FieldADHostResolvedDNs),
			intOrNil(f.Get(extractor.FieldDaysToExpiry)),
			intOrNil(f.Get(extractor.FieldSessionTimeout)),
			f.Get(extractor.FieldCiscoAVPairACS),
			f.Get(extractor.FieldDeviceIPAddress),
			f.Get(extractor.FieldCalledStationID),
			f.Get(extractor.FieldRadiusFlowType),
		}
	case model.PLA:
		values = []any{
			timestamp,
			sourceIP,
			f.Get(extractor.FieldNASIPAddress),
			f.Get(extractor.FieldNASPortID),
			f.Get(extractor.FieldNetworkDeviceName),
			intOrNil(f.Get(extractor.FieldRequestLatency)),
			f.Get(extractor.FieldCiscoAVPairMethod),
			f.Get(extractor.FieldUserName),
			f.Get(extractor.FieldAuthenticationMethod),
			f.Get(extractor.FieldAuthenticationIdentityStore),
			f.Get(extractor.FieldSelectedAccessService),
			f.Get(extractor.FieldSelectedAuthorizationProfiles),
			f.Get(extractor.FieldIdentityGroup),
			f.Get(extractor.FieldSelectedAuthenticationIDStores),
			f.Get(extractor.FieldAuthenticationStatus),
			f.Get(extractor.FieldNDLocation),
			f.Get(extractor.FieldNDDeviceType),
			f.Get(extractor.FieldNDRolloutStage),
			f.Get(extractor.FieldNDReauthController),
			f.Get(extractor.FieldNDClosedMode),
			f.Get(extractor.FieldIdentityPolicyMatchedRule),
			f.Get(extractor.FieldAuthorizationPolicyMatchedRule),
			f.Get(extractor.FieldSubjectCommonName),
			f.Get(extractor.FieldEndPointMACAddress),
			f.Get(extractor.FieldISEPolicySetName),
			f.Get(extractor.FieldADHostResolvedDNs),
			intOrNil(f.Get(extractor.FieldDaysToExpiry)),
			intOrNil(f.Get(extractor.FieldSessionTimeout)),
			f.Get(extractor.FieldCiscoAVPairACS),
			f.Get(extractor.FieldDeviceIPAddress),
		}
	case model.TCA:
		values = []any{
			timestamp,
			f.Get(extractor.FieldUser),
			f.Get(extractor.FieldNetworkDeviceName),
			f.Get(extractor.FieldDeviceIPAddress),
			f.Get(extractor.FieldRemoteAddress),
			f.Get(extractor.FieldCmdSet),
			sourceIP,
		}
	}
	return model.ClassifiedRow{Table: target, Values: values}
}

// intOrNil converts an extracted numeric field to an int, or nil when the
// field was absent. A present-but-unparseable value is passed through as
// the raw string so the sink's validator rejects it rather than silently
// coercing it to zero.
func intOrNil(raw string) any {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return raw
	}
	return n
}
