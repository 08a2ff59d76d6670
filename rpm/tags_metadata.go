/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

package rpm

// MetadataTag ids. The teacher (src/holo-build/rpm/header.go) only declares
// the ~50 ids it needs to write; spec.md §6 requires "every id that may
// appear in a conformant package" since unknown ids must merely be
// tolerated, never misread. This list is ported from the teacher's
// Rpmtag* block and extended using original_source/src/header/tags.rs (via
// _INDEX.md) and well-known rpmtag.h values, covering the package
// identification, dependency, file-manifest, trigger, and weak-dependency
// tag ranges. A handful of internal/build-time-only or long-deprecated ids
// are omitted; readers still tolerate them via the unknown-tag path.
const (
	TagHeaderImage      uint32 = 61
	TagHeaderSignatures uint32 = 62
	TagHeaderImmutable  uint32 = 63
	TagHeaderRegions    uint32 = 64
	TagHeaderI18NTable  uint32 = 100

	TagName         uint32 = 1000
	TagVersion      uint32 = 1001
	TagRelease      uint32 = 1002
	TagEpoch        uint32 = 1003
	TagSummary      uint32 = 1004
	TagDescription  uint32 = 1005
	TagBuildTime    uint32 = 1006
	TagBuildHost    uint32 = 1007
	TagInstallTime  uint32 = 1008
	TagSize         uint32 = 1009
	TagDistribution uint32 = 1010
	TagVendor       uint32 = 1011
	TagLicense      uint32 = 1014
	TagPackager     uint32 = 1015
	TagGroup        uint32 = 1016
	TagChangelog    uint32 = 1017
	TagSource       uint32 = 1018
	TagPatch        uint32 = 1019
	TagURL          uint32 = 1020
	TagOs           uint32 = 1021
	TagArch         uint32 = 1022
	TagPreIn        uint32 = 1023
	TagPostIn       uint32 = 1024
	TagPreUn        uint32 = 1025
	TagPostUn       uint32 = 1026
	TagOldFileNames uint32 = 1027

	TagFileSizes     uint32 = 1028
	TagFileStates    uint32 = 1029
	TagFileModes     uint32 = 1030
	TagFileRdevs     uint32 = 1033
	TagFileMtimes    uint32 = 1034
	TagFileMD5s      uint32 = 1035
	TagFileLinktos   uint32 = 1036
	TagFileFlags     uint32 = 1037
	TagFileUserName  uint32 = 1039
	TagFileGroupName uint32 = 1040

	TagIcon           uint32 = 1043
	TagSourceRPM      uint32 = 1044
	TagFileVerifyFlags uint32 = 1045
	TagArchiveSize    uint32 = 1046
	TagProvideName    uint32 = 1047
	TagRequireFlags   uint32 = 1048
	TagRequireName    uint32 = 1049
	TagRequireVersion uint32 = 1050
	TagNoSource       uint32 = 1051
	TagNoPatch        uint32 = 1052
	TagConflictFlags  uint32 = 1053
	TagConflictName   uint32 = 1054
	TagConflictVersion uint32 = 1055

	TagBuildRoot      uint32 = 1057
	TagExcludeArch    uint32 = 1059
	TagExcludeOs      uint32 = 1060
	TagExclusiveArch  uint32 = 1061
	TagExclusiveOs    uint32 = 1062
	TagRPMVersion     uint32 = 1064
	TagTriggerScripts uint32 = 1065
	TagTriggerName    uint32 = 1066
	TagTriggerVersion uint32 = 1067
	TagTriggerFlags   uint32 = 1068
	TagTriggerIndex   uint32 = 1069

	TagVerifyScript  uint32 = 1079
	TagChangelogTime uint32 = 1080
	TagChangelogName uint32 = 1081
	TagChangelogText uint32 = 1082

	TagPreInProg        uint32 = 1085
	TagPostInProg       uint32 = 1086
	TagPreUnProg        uint32 = 1087
	TagPostUnProg       uint32 = 1088
	TagBuildArchs       uint32 = 1089
	TagObsoleteName     uint32 = 1090
	TagVerifyScriptProg uint32 = 1091
	TagTriggerScriptProg uint32 = 1092
	TagCookie           uint32 = 1094
	TagFileDevices      uint32 = 1095
	TagFileInodes       uint32 = 1096
	TagFileLangs        uint32 = 1097
	TagPrefixes         uint32 = 1098
	TagInstPrefixes     uint32 = 1099

	TagSourcePackage  uint32 = 1106
	TagProvideFlags   uint32 = 1112
	TagProvideVersion uint32 = 1113
	TagObsoleteFlags  uint32 = 1114
	TagObsoleteVersion uint32 = 1115
	TagDirIndexes     uint32 = 1116
	TagBasenames      uint32 = 1117
	TagDirNames       uint32 = 1118
	TagOptFlags       uint32 = 1122
	TagDistURL        uint32 = 1123
	TagPayloadFormat  uint32 = 1124
	TagPayloadCompressor uint32 = 1125
	TagPayloadFlags   uint32 = 1126
	TagPlatform       uint32 = 1132

	TagFileColors      uint32 = 1140
	TagFileClass       uint32 = 1141
	TagClassDict       uint32 = 1142
	TagFileDependsX    uint32 = 1143
	TagFileDependsN    uint32 = 1144
	TagDependsDict     uint32 = 1145
	TagSourcePkgID     uint32 = 1146
	TagPolicies        uint32 = 1150
	TagPreTrans        uint32 = 1151
	TagPostTrans       uint32 = 1152
	TagPreTransProg    uint32 = 1153
	TagPostTransProg   uint32 = 1154
	TagDistTag         uint32 = 1155

	TagCVSID uint32 = 1163

	TagLongFileSizes    uint32 = 5008
	TagLongSize         uint32 = 5009
	TagFileCaps         uint32 = 5010
	TagFileDigestAlgo   uint32 = 5011
	TagBugURL           uint32 = 5012

	TagOrderName    uint32 = 5035
	TagOrderVersion uint32 = 5036
	TagOrderFlags   uint32 = 5037

	TagRecommendName    uint32 = 5046
	TagRecommendVersion uint32 = 5047
	TagRecommendFlags   uint32 = 5048
	TagSuggestName      uint32 = 5049
	TagSuggestVersion   uint32 = 5050
	TagSuggestFlags     uint32 = 5051
	TagSupplementName   uint32 = 5052
	TagSupplementVersion uint32 = 5053
	TagSupplementFlags  uint32 = 5054
	TagEnhanceName      uint32 = 5055
	TagEnhanceVersion   uint32 = 5056
	TagEnhanceFlags     uint32 = 5057

	TagEncoding                  uint32 = 5062
	TagFileTriggerScripts        uint32 = 5066
	TagFileTriggerScriptProg     uint32 = 5067
	TagFileTriggerScriptFlags    uint32 = 5068
	TagFileTriggerName           uint32 = 5069
	TagFileTriggerIndex          uint32 = 5070
	TagFileTriggerVersion        uint32 = 5071
	TagFileTriggerFlags          uint32 = 5072
	TagTransFileTriggerScripts   uint32 = 5076
	TagTransFileTriggerScriptProg uint32 = 5077
	TagTransFileTriggerScriptFlags uint32 = 5078
	TagTransFileTriggerName      uint32 = 5079
	TagTransFileTriggerIndex     uint32 = 5080
	TagTransFileTriggerVersion   uint32 = 5081
	TagTransFileTriggerFlags     uint32 = 5082
	TagFileTriggerPriorities     uint32 = 5084
	TagTransFileTriggerPriorities uint32 = 5085

	TagPayloadDigest     uint32 = 5092
	TagPayloadDigestAlgo uint32 = 5093
	TagModularityLabel   uint32 = 5096
	TagPayloadDigestAlt  uint32 = 5097
)

var metadataTagNames = map[uint32]string{
	TagHeaderImage:      "HeaderImage",
	TagHeaderSignatures: "HeaderSignatures",
	TagHeaderImmutable:  "HeaderImmutable",
	TagHeaderRegions:    "HeaderRegions",
	TagHeaderI18NTable:  "HeaderI18NTable",

	TagName:         "Name",
	TagVersion:      "Version",
	TagRelease:      "Release",
	TagEpoch:        "Epoch",
	TagSummary:      "Summary",
	TagDescription:  "Description",
	TagBuildTime:    "BuildTime",
	TagBuildHost:    "BuildHost",
	TagInstallTime:  "InstallTime",
	TagSize:         "Size",
	TagDistribution: "Distribution",
	TagVendor:       "Vendor",
	TagLicense:      "License",
	TagPackager:     "Packager",
	TagGroup:        "Group",
	TagChangelog:    "Changelog",
	TagSource:       "Source",
	TagPatch:        "Patch",
	TagURL:          "URL",
	TagOs:           "Os",
	TagArch:         "Arch",
	TagPreIn:        "PreIn",
	TagPostIn:       "PostIn",
	TagPreUn:        "PreUn",
	TagPostUn:       "PostUn",
	TagOldFileNames: "OldFileNames",

	TagFileSizes:     "FileSizes",
	TagFileStates:    "FileStates",
	TagFileModes:     "FileModes",
	TagFileRdevs:     "FileRdevs",
	TagFileMtimes:    "FileMtimes",
	TagFileMD5s:      "FileMD5s",
	TagFileLinktos:   "FileLinktos",
	TagFileFlags:     "FileFlags",
	TagFileUserName:  "FileUserName",
	TagFileGroupName: "FileGroupName",

	TagIcon:            "Icon",
	TagSourceRPM:       "SourceRPM",
	TagFileVerifyFlags: "FileVerifyFlags",
	TagArchiveSize:     "ArchiveSize",
	TagProvideName:     "ProvideName",
	TagRequireFlags:    "RequireFlags",
	TagRequireName:     "RequireName",
	TagRequireVersion:  "RequireVersion",
	TagNoSource:        "NoSource",
	TagNoPatch:         "NoPatch",
	TagConflictFlags:   "ConflictFlags",
	TagConflictName:    "ConflictName",
	TagConflictVersion: "ConflictVersion",

	TagBuildRoot:      "BuildRoot",
	TagExcludeArch:    "ExcludeArch",
	TagExcludeOs:      "ExcludeOs",
	TagExclusiveArch:  "ExclusiveArch",
	TagExclusiveOs:    "ExclusiveOs",
	TagRPMVersion:     "RPMVersion",
	TagTriggerScripts: "TriggerScripts",
	TagTriggerName:    "TriggerName",
	TagTriggerVersion: "TriggerVersion",
	TagTriggerFlags:   "TriggerFlags",
	TagTriggerIndex:   "TriggerIndex",

	TagVerifyScript:  "VerifyScript",
	TagChangelogTime: "ChangelogTime",
	TagChangelogName: "ChangelogName",
	TagChangelogText: "ChangelogText",

	TagPreInProg:         "PreInProg",
	TagPostInProg:        "PostInProg",
	TagPreUnProg:         "PreUnProg",
	TagPostUnProg:        "PostUnProg",
	TagBuildArchs:        "BuildArchs",
	TagObsoleteName:      "ObsoleteName",
	TagVerifyScriptProg:  "VerifyScriptProg",
	TagTriggerScriptProg: "TriggerScriptProg",
	TagCookie:            "Cookie",
	TagFileDevices:       "FileDevices",
	TagFileInodes:        "FileInodes",
	TagFileLangs:         "FileLangs",
	TagPrefixes:          "Prefixes",
	TagInstPrefixes:      "InstPrefixes",

	TagSourcePackage:     "SourcePackage",
	TagProvideFlags:      "ProvideFlags",
	TagProvideVersion:    "ProvideVersion",
	TagObsoleteFlags:     "ObsoleteFlags",
	TagObsoleteVersion:   "ObsoleteVersion",
	TagDirIndexes:        "DirIndexes",
	TagBasenames:         "Basenames",
	TagDirNames:          "DirNames",
	TagOptFlags:          "OptFlags",
	TagDistURL:           "DistURL",
	TagPayloadFormat:     "PayloadFormat",
	TagPayloadCompressor: "PayloadCompressor",
	TagPayloadFlags:      "PayloadFlags",
	TagPlatform:          "Platform",

	TagFileColors:    "FileColors",
	TagFileClass:     "FileClass",
	TagClassDict:     "ClassDict",
	TagFileDependsX:  "FileDependsX",
	TagFileDependsN:  "FileDependsN",
	TagDependsDict:   "DependsDict",
	TagSourcePkgID:   "SourcePkgID",
	TagPolicies:      "Policies",
	TagPreTrans:      "PreTrans",
	TagPostTrans:     "PostTrans",
	TagPreTransProg:  "PreTransProg",
	TagPostTransProg: "PostTransProg",
	TagDistTag:       "DistTag",

	TagCVSID: "CVSID",

	TagLongFileSizes:  "LongFileSizes",
	TagLongSize:       "LongSize",
	TagFileCaps:       "FileCaps",
	TagFileDigestAlgo: "FileDigestAlgo",
	TagBugURL:         "BugURL",

	TagOrderName:    "OrderName",
	TagOrderVersion: "OrderVersion",
	TagOrderFlags:   "OrderFlags",

	TagRecommendName:     "RecommendName",
	TagRecommendVersion:  "RecommendVersion",
	TagRecommendFlags:    "RecommendFlags",
	TagSuggestName:       "SuggestName",
	TagSuggestVersion:    "SuggestVersion",
	TagSuggestFlags:      "SuggestFlags",
	TagSupplementName:    "SupplementName",
	TagSupplementVersion: "SupplementVersion",
	TagSupplementFlags:   "SupplementFlags",
	TagEnhanceName:       "EnhanceName",
	TagEnhanceVersion:    "EnhanceVersion",
	TagEnhanceFlags:      "EnhanceFlags",

	TagEncoding:                    "Encoding",
	TagFileTriggerScripts:          "FileTriggerScripts",
	TagFileTriggerScriptProg:       "FileTriggerScriptProg",
	TagFileTriggerScriptFlags:      "FileTriggerScriptFlags",
	TagFileTriggerName:             "FileTriggerName",
	TagFileTriggerIndex:            "FileTriggerIndex",
	TagFileTriggerVersion:          "FileTriggerVersion",
	TagFileTriggerFlags:            "FileTriggerFlags",
	TagTransFileTriggerScripts:     "TransFileTriggerScripts",
	TagTransFileTriggerScriptProg:  "TransFileTriggerScriptProg",
	TagTransFileTriggerScriptFlags: "TransFileTriggerScriptFlags",
	TagTransFileTriggerName:        "TransFileTriggerName",
	TagTransFileTriggerIndex:       "TransFileTriggerIndex",
	TagTransFileTriggerVersion:     "TransFileTriggerVersion",
	TagTransFileTriggerFlags:       "TransFileTriggerFlags",
	TagFileTriggerPriorities:       "FileTriggerPriorities",
	TagTransFileTriggerPriorities:  "TransFileTriggerPriorities",

	TagPayloadDigest:     "PayloadDigest",
	TagPayloadDigestAlgo: "PayloadDigestAlgo",
	TagModularityLabel:   "ModularityLabel",
	TagPayloadDigestAlt:  "PayloadDigestAlt",
}
