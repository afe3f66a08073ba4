// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package extractor

import "regexp"

// Named field keys. These are the keys Fields is populated under; the
// classifier's row builders read them back out by name when assembling a
// ClassifiedRow for a given table.
const (
	FieldUserName                        = "UserName"
	FieldNASIPAddress                     = "NASIPAddress"
	FieldNASPortID                        = "NASPortID"
	FieldCalledStationID                  = "CalledStationID"
	FieldFailureReason                    = "FailureReason"
	FieldNetworkDeviceName                = "NetworkDeviceName"
	FieldRemoteAddress                    = "RemoteAddress"
	FieldRequestLatency                   = "RequestLatency"
	FieldDeviceIPAddress                  = "DeviceIPAddress"
	FieldAuthenticationMethod             = "AuthenticationMethod"
	FieldAuthenticationIdentityStore      = "AuthenticationIdentityStore"
	FieldSelectedAccessService            = "SelectedAccessService"
	FieldSelectedAuthorizationProfiles    = "SelectedAuthorizationProfiles"
	FieldIdentityGroup                    = "IdentityGroup"
	FieldSelectedAuthenticationIDStores   = "SelectedAuthenticationIdentityStores"
	FieldAuthenticationStatus             = "AuthenticationStatus"
	FieldNDLocation                       = "NDLocation"
	FieldNDDeviceType                     = "NDDeviceType"
	FieldNDRolloutStage                   = "NDRolloutStage"
	FieldNDReauthController               = "NDReauthController"
	FieldNDClosedMode                     = "NDClosedMode"
	FieldIdentityPolicyMatchedRule        = "IdentityPolicyMatchedRule"
	FieldAuthorizationPolicyMatchedRule   = "AuthorizationPolicyMatchedRule"
	FieldSubjectCommonName                = "SubjectCommonName"
	FieldEndPointMACAddress               = "EndPointMACAddress"
	FieldISEPolicySetName                 = "ISEPolicySetName"
	FieldADHostResolvedDNs                = "ADHostResolvedDNs"
	FieldDaysToExpiry                     = "DaysToExpiry"
	FieldSessionTimeout                   = "SessionTimeout"
	FieldCiscoAVPairACS                   = "CiscoAVPairACS"
	FieldCiscoAVPairMethod                = "CiscoAVPairMethod"
	FieldUser                             = "User"
	FieldCmdSet                           = "CmdSet"
	FieldRadiusFlowType                   = "RadiusFlowType"
)

type fieldPattern struct {
	name    string
	pattern *regexp.Regexp
}

// patterns is the field-pattern library: one entry per named field, each a
// regex whose first capture group is the value. Delimiters follow the
// message's own "key=value, " convention — terminator is comma-or-
// whitespace-or-'<' unless a field carries its own (Session-Timeout and
// cisco-av-pair=ACS terminate on ';' instead, CmdSet on a literal ' ]').
var patterns = []fieldPattern{
	{FieldUserName, regexp.MustCompile(`UserName=(.+?),[\s<]`)},
	{FieldNASIPAddress, regexp.MustCompile(`NAS-IP-Address=(.+?),[\s<]`)},
	{FieldNASPortID, regexp.MustCompile(`NAS-Port-Id=(.+?),[\s<]`)},
	{FieldCalledStationID, regexp.MustCompile(`Called-Station-ID=([^,:]+)`)},
	{FieldFailureReason, regexp.MustCompile(`FailureReason=([^,]+)`)},
	{FieldNetworkDeviceName, regexp.MustCompile(`NetworkDeviceName=([^,]+)`)},
	{FieldRemoteAddress, regexp.MustCompile(`Remote-Address=([^,]+)`)},
	{FieldRequestLatency, regexp.MustCompile(`RequestLatency=([^,]+)`)},
	{FieldDeviceIPAddress, regexp.MustCompile(`Device IP Address=([^,]+)`)},
	{FieldAuthenticationMethod, regexp.MustCompile(`AuthenticationMethod=(.+?),[\s<]`)},
	// The leading [^=] excludes a match where "AuthenticationIdentityStore="
	// directly follows an '=' (i.e. appears as the start of another field's
	// value); RE2 has no lookbehind, so a required non-'=' predecessor char
	// stands in. A key at the very start of the text is therefore not matched.
	{FieldAuthenticationIdentityStore, regexp.MustCompile(`[^=]AuthenticationIdentityStore=(.+?),[\s<]`)},
	{FieldSelectedAccessService, regexp.MustCompile(`SelectedAccessService=(.+?),[\s<]`)},
	{FieldSelectedAuthorizationProfiles, regexp.MustCompile(`SelectedAuthorizationProfiles=(.+?),[\s<]`)},
	{FieldIdentityGroup, regexp.MustCompile(`IdentityGroup=Endpoint Identity Groups:(.+?),[\s<]`)},
	{FieldSelectedAuthenticationIDStores, regexp.MustCompile(`SelectedAuthenticationIdentityStores=(.+?),[\s<]`)},
	{FieldAuthenticationStatus, regexp.MustCompile(`AuthenticationStatus=(.+?),[\s<]`)},
	{FieldNDLocation, regexp.MustCompile(`NetworkDeviceGroups=Location#(.+?),[\s<]`)},
	{FieldNDDeviceType, regexp.MustCompile(`NetworkDeviceGroups=Device Type#(.+?),[\s<]`)},
	{FieldNDRolloutStage, regexp.MustCompile(`NetworkDeviceGroups=Rollout Stage#(.+?),[\s<]`)},
	{FieldNDReauthController, regexp.MustCompile(`NetworkDeviceGroups=Reauth Controller#(.+?),[\s<]`)},
	{FieldNDClosedMode, regexp.MustCompile(`NetworkDeviceGroups=Closed Mode#(.+?),[\s<]`)},
	{FieldIdentityPolicyMatchedRule, regexp.MustCompile(`IdentityPolicyMatchedRule=(.+?),[\s<]`)},
	{FieldAuthorizationPolicyMatchedRule, regexp.MustCompile(`AuthorizationPolicyMatchedRule=(.+?),[\s<]`)},
	{FieldSubjectCommonName, regexp.MustCompile(`Subject - Common Name=(.+?),[\s<]`)},
	{FieldEndPointMACAddress, regexp.MustCompile(`EndPointMACAddress=(.+?),[\s<]`)},
	{FieldISEPolicySetName, regexp.MustCompile(`ISEPolicySetName=(.+?),[\s<]`)},
	{FieldADHostResolvedDNs, regexp.MustCompile(`AD-Host-Resolved-DNs=(.+?),[\s<]`)},
	{FieldDaysToExpiry, regexp.MustCompile(`Days to Expiry=(.+?),[\s<]`)},
	{FieldSessionTimeout, regexp.MustCompile(`Session-Timeout=(.+?);[\s<]`)},
	{FieldCiscoAVPairACS, regexp.MustCompile(`cisco-av-pair=ACS:(.+?);[\s<]`)},
	{FieldCiscoAVPairMethod, regexp.MustCompile(`cisco-av-pair=method=(.+?),[\s<]`)},
	{FieldUser, regexp.MustCompile(`User=([^,]+)`)},
	{FieldCmdSet, regexp.MustCompile(`CmdSet=\[ CmdAV=([^,]+) ]`)},
	{FieldRadiusFlowType, regexp.MustCompile(`RadiusFlowType=(.+?),[\s<]`)},
}

// chunkHeader matches a fragment's chunk header: "CISE_<word> <uid> <total> <index>".
var chunkHeader = regexp.MustCompile(`CISE_\w+ (\d+) (\d+) (\d+)`)

// timestampPattern pulls the message's own timestamp, preferred over
// wall-clock when present.
var timestampPattern = regexp.MustCompile(`\d+ \d+ (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d+ [+-]\d{2}:\d{2})`)
