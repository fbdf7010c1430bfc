// Package knownfolders resolves Windows known folder identifiers
// (user profile, local application data, documents, and the rest of the
// shell's catalog) into absolute filesystem paths.
//
// The catalog is exposed as the closed FolderID enumeration; Path
// performs a single SHGetKnownFolderPath call and classifies every
// failure into one of the package's sentinel errors. On non-Windows
// platforms the API is present but Path always reports ErrUnsupported.
package knownfolders

import (
	"fmt"
	"strings"
)

// FolderID identifies one entry of the Windows known folder catalog.
// The set of values is closed; each one maps to exactly one KNOWNFOLDERID
// constant defined by the shell.
type FolderID int

const (
	NetworkFolder FolderID = iota
	ComputerFolder
	InternetFolder
	ControlPanelFolder
	PrintersFolder
	SyncManagerFolder
	SyncSetupFolder
	ConflictFolder
	SyncResultsFolder
	RecycleBinFolder
	ConnectionsFolder
	Fonts
	Desktop
	Startup
	Programs
	StartMenu
	Recent
	SendTo
	Documents
	Favorites
	NetHood
	PrintHood
	Templates
	CommonStartup
	CommonPrograms
	CommonStartMenu
	PublicDesktop
	ProgramData
	CommonTemplates
	PublicDocuments
	RoamingAppData
	LocalAppData
	LocalAppDataLow
	InternetCache
	Cookies
	History
	System
	SystemX86
	Windows
	Profile
	Pictures
	ProgramFilesX86
	ProgramFilesCommonX86
	ProgramFilesX64
	ProgramFilesCommonX64
	ProgramFiles
	ProgramFilesCommon
	UserProgramFiles
	UserProgramFilesCommon
	AdminTools
	CommonAdminTools
	Music
	Videos
	Ringtones
	PublicPictures
	PublicMusic
	PublicVideos
	PublicRingtones
	ResourceDir
	LocalizedResourcesDir
	CommonOEMLinks
	CDBurning
	UserProfiles
	Playlists
	SamplePlaylists
	SampleMusic
	SamplePictures
	SampleVideos
	PhotoAlbums
	Public
	ChangeRemovePrograms
	AppUpdates
	AddNewPrograms
	Downloads
	PublicDownloads
	SavedSearches
	QuickLaunch
	Contacts
	SidebarParts
	SidebarDefaultParts
	PublicGameTasks
	GameTasks
	SavedGames
	Games
	SearchMapi
	SearchCsc
	Links
	UsersFiles
	UsersLibraries
	SearchHome
	OriginalImages
	DocumentsLibrary
	MusicLibrary
	PicturesLibrary
	VideosLibrary
	RecordedTVLibrary
	HomeGroup
	HomeGroupCurrentUser
	DeviceMetadataStore
	Libraries
	PublicLibraries
	UserPinned
	ImplicitAppShortcuts
	AccountPictures
	PublicUserTiles
	AppsFolder
	StartMenuAllPrograms
	CommonStartMenuPlaces
	ApplicationShortcuts
	RoamingTiles
	RoamedTileImages
	Screenshots
	CameraRoll
	SkyDrive
	OneDrive
	SkyDriveDocuments
	SkyDrivePictures
	SkyDriveMusic
	SkyDriveCameraRoll
	SearchHistory
	SearchTemplates
	CameraRollLibrary
	SavedPictures
	SavedPicturesLibrary
	RetailDemo
	Device
	DevelopmentFiles
	Objects3D
	AppCaptures
	LocalDocuments
	LocalPictures
	LocalVideos
	LocalMusic
	LocalDownloads
	RecordedCalls
	AllAppMods
	CurrentAppMods
	AppDataDesktop
	AppDataDocuments
	AppDataFavorites
	AppDataProgramData

	folderIDCount
)

// folderNames is indexed by FolderID. The fixed array size keeps the
// table in lockstep with the enumeration: adding a FolderID without a
// name is a compile error.
var folderNames = [folderIDCount]string{
	NetworkFolder:          "NetworkFolder",
	ComputerFolder:         "ComputerFolder",
	InternetFolder:         "InternetFolder",
	ControlPanelFolder:     "ControlPanelFolder",
	PrintersFolder:         "PrintersFolder",
	SyncManagerFolder:      "SyncManagerFolder",
	SyncSetupFolder:        "SyncSetupFolder",
	ConflictFolder:         "ConflictFolder",
	SyncResultsFolder:      "SyncResultsFolder",
	RecycleBinFolder:       "RecycleBinFolder",
	ConnectionsFolder:      "ConnectionsFolder",
	Fonts:                  "Fonts",
	Desktop:                "Desktop",
	Startup:                "Startup",
	Programs:               "Programs",
	StartMenu:              "StartMenu",
	Recent:                 "Recent",
	SendTo:                 "SendTo",
	Documents:              "Documents",
	Favorites:              "Favorites",
	NetHood:                "NetHood",
	PrintHood:              "PrintHood",
	Templates:              "Templates",
	CommonStartup:          "CommonStartup",
	CommonPrograms:         "CommonPrograms",
	CommonStartMenu:        "CommonStartMenu",
	PublicDesktop:          "PublicDesktop",
	ProgramData:            "ProgramData",
	CommonTemplates:        "CommonTemplates",
	PublicDocuments:        "PublicDocuments",
	RoamingAppData:         "RoamingAppData",
	LocalAppData:           "LocalAppData",
	LocalAppDataLow:        "LocalAppDataLow",
	InternetCache:          "InternetCache",
	Cookies:                "Cookies",
	History:                "History",
	System:                 "System",
	SystemX86:              "SystemX86",
	Windows:                "Windows",
	Profile:                "Profile",
	Pictures:               "Pictures",
	ProgramFilesX86:        "ProgramFilesX86",
	ProgramFilesCommonX86:  "ProgramFilesCommonX86",
	ProgramFilesX64:        "ProgramFilesX64",
	ProgramFilesCommonX64:  "ProgramFilesCommonX64",
	ProgramFiles:           "ProgramFiles",
	ProgramFilesCommon:     "ProgramFilesCommon",
	UserProgramFiles:       "UserProgramFiles",
	UserProgramFilesCommon: "UserProgramFilesCommon",
	AdminTools:             "AdminTools",
	CommonAdminTools:       "CommonAdminTools",
	Music:                  "Music",
	Videos:                 "Videos",
	Ringtones:              "Ringtones",
	PublicPictures:         "PublicPictures",
	PublicMusic:            "PublicMusic",
	PublicVideos:           "PublicVideos",
	PublicRingtones:        "PublicRingtones",
	ResourceDir:            "ResourceDir",
	LocalizedResourcesDir:  "LocalizedResourcesDir",
	CommonOEMLinks:         "CommonOEMLinks",
	CDBurning:              "CDBurning",
	UserProfiles:           "UserProfiles",
	Playlists:              "Playlists",
	SamplePlaylists:        "SamplePlaylists",
	SampleMusic:            "SampleMusic",
	SamplePictures:         "SamplePictures",
	SampleVideos:           "SampleVideos",
	PhotoAlbums:            "PhotoAlbums",
	Public:                 "Public",
	ChangeRemovePrograms:   "ChangeRemovePrograms",
	AppUpdates:             "AppUpdates",
	AddNewPrograms:         "AddNewPrograms",
	Downloads:              "Downloads",
	PublicDownloads:        "PublicDownloads",
	SavedSearches:          "SavedSearches",
	QuickLaunch:            "QuickLaunch",
	Contacts:               "Contacts",
	SidebarParts:           "SidebarParts",
	SidebarDefaultParts:    "SidebarDefaultParts",
	PublicGameTasks:        "PublicGameTasks",
	GameTasks:              "GameTasks",
	SavedGames:             "SavedGames",
	Games:                  "Games",
	SearchMapi:             "SearchMapi",
	SearchCsc:              "SearchCsc",
	Links:                  "Links",
	UsersFiles:             "UsersFiles",
	UsersLibraries:         "UsersLibraries",
	SearchHome:             "SearchHome",
	OriginalImages:         "OriginalImages",
	DocumentsLibrary:       "DocumentsLibrary",
	MusicLibrary:           "MusicLibrary",
	PicturesLibrary:        "PicturesLibrary",
	VideosLibrary:          "VideosLibrary",
	RecordedTVLibrary:      "RecordedTVLibrary",
	HomeGroup:              "HomeGroup",
	HomeGroupCurrentUser:   "HomeGroupCurrentUser",
	DeviceMetadataStore:    "DeviceMetadataStore",
	Libraries:              "Libraries",
	PublicLibraries:        "PublicLibraries",
	UserPinned:             "UserPinned",
	ImplicitAppShortcuts:   "ImplicitAppShortcuts",
	AccountPictures:        "AccountPictures",
	PublicUserTiles:        "PublicUserTiles",
	AppsFolder:             "AppsFolder",
	StartMenuAllPrograms:   "StartMenuAllPrograms",
	CommonStartMenuPlaces:  "CommonStartMenuPlaces",
	ApplicationShortcuts:   "ApplicationShortcuts",
	RoamingTiles:           "RoamingTiles",
	RoamedTileImages:       "RoamedTileImages",
	Screenshots:            "Screenshots",
	CameraRoll:             "CameraRoll",
	SkyDrive:               "SkyDrive",
	OneDrive:               "OneDrive",
	SkyDriveDocuments:      "SkyDriveDocuments",
	SkyDrivePictures:       "SkyDrivePictures",
	SkyDriveMusic:          "SkyDriveMusic",
	SkyDriveCameraRoll:     "SkyDriveCameraRoll",
	SearchHistory:          "SearchHistory",
	SearchTemplates:        "SearchTemplates",
	CameraRollLibrary:      "CameraRollLibrary",
	SavedPictures:          "SavedPictures",
	SavedPicturesLibrary:   "SavedPicturesLibrary",
	RetailDemo:             "RetailDemo",
	Device:                 "Device",
	DevelopmentFiles:       "DevelopmentFiles",
	Objects3D:              "Objects3D",
	AppCaptures:            "AppCaptures",
	LocalDocuments:         "LocalDocuments",
	LocalPictures:          "LocalPictures",
	LocalVideos:            "LocalVideos",
	LocalMusic:             "LocalMusic",
	LocalDownloads:         "LocalDownloads",
	RecordedCalls:          "RecordedCalls",
	AllAppMods:             "AllAppMods",
	CurrentAppMods:         "CurrentAppMods",
	AppDataDesktop:         "AppDataDesktop",
	AppDataDocuments:       "AppDataDocuments",
	AppDataFavorites:       "AppDataFavorites",
	AppDataProgramData:     "AppDataProgramData",
}

// folderIDsByName supports case-insensitive ParseFolderID lookups.
var folderIDsByName = func() map[string]FolderID {
	m := make(map[string]FolderID, folderIDCount)
	for id, name := range folderNames {
		m[strings.ToLower(name)] = FolderID(id)
	}
	return m
}()

// Valid reports whether id is part of the known folder catalog.
func (id FolderID) Valid() bool {
	return id >= 0 && id < folderIDCount
}

// String returns the catalog name of the folder, e.g. "LocalAppData".
func (id FolderID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("FolderID(%d)", int(id))
	}
	return folderNames[id]
}

// ParseFolderID converts a catalog name to its FolderID. Matching is
// case-insensitive.
func ParseFolderID(name string) (FolderID, error) {
	id, ok := folderIDsByName[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown folder %q", name)
	}
	return id, nil
}

// All returns every FolderID in catalog order. The slice is freshly
// allocated on each call; callers may modify it.
func All() []FolderID {
	ids := make([]FolderID, folderIDCount)
	for i := range ids {
		ids[i] = FolderID(i)
	}
	return ids
}
