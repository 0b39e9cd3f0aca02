// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) QUILL NETWORK. All rights reserved.

package config

type loggerConfiguration struct {
	Level  string
	Format string
}

type wireConfiguration struct {
	// MaxInvItems bounds the number of records accepted in one inv
	// payload, on both encode and decode.
	MaxInvItems uint32
}
