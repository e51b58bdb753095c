// Package memsnapshot is a reference typesource.TypeRepository and
// typesource.ProcessState backed by a JSON document: a type table, a
// list of seed typed blocks, and raw byte ranges. It exists purely to
// feed the inference core from a file for demos and tests; the core
// itself has no persisted-state layout or wire protocol.
//
// An example document:
//
//	{
//	  "types": [
//	    {"id": 1, "kind": "primitive", "size": 4},
//	    {"id": 2, "kind": "array", "elem_type": 1, "size": 8},
//	    {"id": 3, "kind": "record", "size": 8, "fields": [
//	      {"name": "next", "type": 4, "offset": 0}
//	    ]},
//	    {"id": 4, "kind": "pointer", "target_type": 3, "size": 8}
//	  ],
//	  "blocks": [ {"address": 4096, "type_id": 2} ],
//	  "memory": [ {"address": 4096, "data_base64": "AAAAAAAAAAA="} ]
//	}
package memsnapshot
