// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package model

// TableSchemas gives, for each Family, the ordered column list a
// ClassifiedRow's Values must match. The database is assumed to already
// carry these columns with these types; nothing here creates or migrates
// a schema.
var TableSchemas = map[Family][]Column{
	FTA: {
		{Name: "timestamp", Type: ColText, NotNull: true},
		{Name: "ipaddress", Type: ColText},
		{Name: "username", Type: ColText},
		{Name: "nasipaddress", Type: ColText},
		{Name: "remoteaddress", Type: ColText},
		{Name: "failurereason", Type: ColText},
		{Name: "networkdevicename", Type: ColText},
		{Name: "requestlatency", Type: ColInt},
	},
	FWA: {
		{Name: "timestamp", Type: ColText, NotNull: true},
		{Name: "ipaddress", Type: ColText},
		{Name: "username", Type: ColText},
		{Name: "nasipaddress", Type: ColText},
		{Name: "calledstationid", Type: ColText},
		{Name: "failurereason", Type: ColText},
		{Name: "networkdevicename", Type: ColText},
	},
	FLA: {
		{Name: "timestamp", Type: ColText, NotNull: true},
		{Name: "ipaddress", Type: ColText},
		{Name: "username", Type: ColText},
		{Name: "nasipaddress", Type: ColText},
		{Name: "nasportid", Type: ColText},
		{Name: "failurereason", Type: ColText},
		{Name: "networkdevicename", Type: ColText},
	},
	PWA: {
		{Name: "timestamp", Type: ColText, NotNull: true},
		{Name: "sourceip", Type: ColInet},
		{Name: "nasipaddress", Type: ColInet},
		{Name: "networkdevicename", Type: ColText},
		{Name: "requestlatency", Type: ColInt},
		{Name: "ciscoavpairmethod", Type: ColText},
		{Name: "username", Type: ColText},
		{Name: "authenticationmethod", Type: ColText},
		{Name: "authenticationidentitystore", Type: ColText},
		{Name: "selectedaccessservice", Type: ColText},
		{Name: "selectedauthorizationprofiles", Type: ColText},
		{Name: "identitygroup", Type: ColText},
		{Name: "selectedauthenticationidentitystores", Type: ColText},
		{Name: "authenticationstatus", Type: ColText},
		{Name: "ndlocation", Type: ColText},
		{Name: "nddevice", Type: ColText},
		{Name: "ndrollout", Type: ColText},
		{Name: "ndreauth", Type: ColText},
		{Name: "ndclosed", Type: ColText},
		{Name: "identitypolicymatchedrule", Type: ColText},
		{Name: "authorizationpolicymatchedrule", Type: ColText},
		{Name: "subjectcommonname", Type: ColText},
		{Name: "endpointmacaddress", Type: ColText},
		{Name: "isepolicysetname", Type: ColText},
		{Name: "adhostresolveddns", Type: ColText},
		{Name: "daystoexpiry", Type: ColInt},
		{Name: "sessiontimeout", Type: ColInt},
		{Name: "ciscoavpairacs", Type: ColText},
		{Name: "deviceip", Type: ColInet},
		{Name: "calledstationid", Type: ColText},
		{Name: "radiusflowtype", Type: ColText},
	},
	PLA: {
		{Name: "timestamp", Type: ColText, NotNull: true},
		{Name: "sourceip", Type: ColInet},
		{Name: "nasipaddress", Type: ColInet},
		{Name: "nasportid", Type: ColText},
		{Name: "networkdevicename", Type: ColText},
		{Name: "requestlatency", Type: ColInt},
		{Name: "ciscoavpairmethod", Type: ColText},
		{Name: "username", Type: ColText},
		{Name: "authenticationmethod", Type: ColText},
		{Name: "authenticationidentitystore", Type: ColText},
		{Name: "selectedaccessservice", Type: ColText},
		{Name: "selectedauthorizationprofiles", Type: ColText},
		{Name: "identitygroup", Type: ColText},
		{Name: "selectedauthenticationidentitystores", Type: ColText},
		{Name: "authenticationstatus", Type: ColText},
		{Name: "ndlocation", Type: ColText},
		{Name: "nddevice", Type: ColText},
		{Name: "ndrollout", Type: ColText},
		{Name: "ndreauth", Type: ColText},
		{Name: "ndclosed", Type: ColText},
		{Name: "identitypolicymatchedrule", Type: ColText},
		{Name: "authorizationpolicymatchedrule", Type: ColText},
		{Name: "subjectcommonname", Type: ColText},
		{Name: "endpointmacaddress", Type: ColText},
		{Name: "isepolicysetname", Type: ColText},
		{Name: "adhostresolveddns", Type: ColText},
		{Name: "daystoexpiry", Type: ColInt},
		{Name: "sessiontimeout", Type: ColInt},
		{Name: "ciscoavpairacs", Type: ColText},
		{Name: "deviceip", Type: ColInet},
	},
	TCA: {
		{Name: "timestamp", Type: ColText, NotNull: true},
		{Name: "username", Type: ColText, NotNull: true},
		{Name: "networkdevicename", Type: ColText, NotNull: true},
		{Name: "networkdeviceip", Type: ColInet, NotNull: true},
		{Name: "remotedevice", Type: ColInet},
		{Name: "cmdset", Type: ColText, NotNull: true},
		{Name: "ipaddress", Type: ColInet},
	},
}
