// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package scical

// DefaultPrelude is the key script applied on startup unless a prelude
// is configured or stored in the tape database.
const DefaultPrelude = ``

// PreludeKey is the tape metadata key holding a stored prelude.
const PreludeKey = "prelude"
