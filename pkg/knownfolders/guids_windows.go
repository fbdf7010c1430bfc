//go:build windows

package knownfolders

import "golang.org/x/sys/windows"

// folderGUIDs maps every FolderID to the shell's KNOWNFOLDERID
// constant. The mapping is total and pure; the fixed array size keeps
// it in lockstep with the enumeration.
var folderGUIDs = [folderIDCount]*windows.KNOWNFOLDERID{
	NetworkFolder:          windows.FOLDERID_NetworkFolder,
	ComputerFolder:         windows.FOLDERID_ComputerFolder,
	InternetFolder:         windows.FOLDERID_InternetFolder,
	ControlPanelFolder:     windows.FOLDERID_ControlPanelFolder,
	PrintersFolder:         windows.FOLDERID_PrintersFolder,
	SyncManagerFolder:      windows.FOLDERID_SyncManagerFolder,
	SyncSetupFolder:        windows.FOLDERID_SyncSetupFolder,
	ConflictFolder:         windows.FOLDERID_ConflictFolder,
	SyncResultsFolder:      windows.FOLDERID_SyncResultsFolder,
	RecycleBinFolder:       windows.FOLDERID_RecycleBinFolder,
	ConnectionsFolder:      windows.FOLDERID_ConnectionsFolder,
	Fonts:                  windows.FOLDERID_Fonts,
	Desktop:                windows.FOLDERID_Desktop,
	Startup:                windows.FOLDERID_Startup,
	Programs:               windows.FOLDERID_Programs,
	StartMenu:              windows.FOLDERID_StartMenu,
	Recent:                 windows.FOLDERID_Recent,
	SendTo:                 windows.FOLDERID_SendTo,
	Documents:              windows.FOLDERID_Documents,
	Favorites:              windows.FOLDERID_Favorites,
	NetHood:                windows.FOLDERID_NetHood,
	PrintHood:              windows.FOLDERID_PrintHood,
	Templates:              windows.FOLDERID_Templates,
	CommonStartup:          windows.FOLDERID_CommonStartup,
	CommonPrograms:         windows.FOLDERID_CommonPrograms,
	CommonStartMenu:        windows.FOLDERID_CommonStartMenu,
	PublicDesktop:          windows.FOLDERID_PublicDesktop,
	ProgramData:            windows.FOLDERID_ProgramData,
	CommonTemplates:        windows.FOLDERID_CommonTemplates,
	PublicDocuments:        windows.FOLDERID_PublicDocuments,
	RoamingAppData:         windows.FOLDERID_RoamingAppData,
	LocalAppData:           windows.FOLDERID_LocalAppData,
	LocalAppDataLow:        windows.FOLDERID_LocalAppDataLow,
	InternetCache:          windows.FOLDERID_InternetCache,
	Cookies:                windows.FOLDERID_Cookies,
	History:                windows.FOLDERID_History,
	System:                 windows.FOLDERID_System,
	SystemX86:              windows.FOLDERID_SystemX86,
	Windows:                windows.FOLDERID_Windows,
	Profile:                windows.FOLDERID_Profile,
	Pictures:               windows.FOLDERID_Pictures,
	ProgramFilesX86:        windows.FOLDERID_ProgramFilesX86,
	ProgramFilesCommonX86:  windows.FOLDERID_ProgramFilesCommonX86,
	ProgramFilesX64:        windows.FOLDERID_ProgramFilesX64,
	ProgramFilesCommonX64:  windows.FOLDERID_ProgramFilesCommonX64,
	ProgramFiles:           windows.FOLDERID_ProgramFiles,
	ProgramFilesCommon:     windows.FOLDERID_ProgramFilesCommon,
	UserProgramFiles:       windows.FOLDERID_UserProgramFiles,
	UserProgramFilesCommon: windows.FOLDERID_UserProgramFilesCommon,
	AdminTools:             windows.FOLDERID_AdminTools,
	CommonAdminTools:       windows.FOLDERID_CommonAdminTools,
	Music:                  windows.FOLDERID_Music,
	Videos:                 windows.FOLDERID_Videos,
	Ringtones:              windows.FOLDERID_Ringtones,
	PublicPictures:         windows.FOLDERID_PublicPictures,
	PublicMusic:            windows.FOLDERID_PublicMusic,
	PublicVideos:           windows.FOLDERID_PublicVideos,
	PublicRingtones:        windows.FOLDERID_PublicRingtones,
	ResourceDir:            windows.FOLDERID_ResourceDir,
	LocalizedResourcesDir:  windows.FOLDERID_LocalizedResourcesDir,
	CommonOEMLinks:         windows.FOLDERID_CommonOEMLinks,
	CDBurning:              windows.FOLDERID_CDBurning,
	UserProfiles:           windows.FOLDERID_UserProfiles,
	Playlists:              windows.FOLDERID_Playlists,
	SamplePlaylists:        windows.FOLDERID_SamplePlaylists,
	SampleMusic:            windows.FOLDERID_SampleMusic,
	SamplePictures:         windows.FOLDERID_SamplePictures,
	SampleVideos:           windows.FOLDERID_SampleVideos,
	PhotoAlbums:            windows.FOLDERID_PhotoAlbums,
	Public:                 windows.FOLDERID_Public,
	ChangeRemovePrograms:   windows.FOLDERID_ChangeRemovePrograms,
	AppUpdates:             windows.FOLDERID_AppUpdates,
	AddNewPrograms:         windows.FOLDERID_AddNewPrograms,
	Downloads:              windows.FOLDERID_Downloads,
	PublicDownloads:        windows.FOLDERID_PublicDownloads,
	SavedSearches:          windows.FOLDERID_SavedSearches,
	QuickLaunch:            windows.FOLDERID_QuickLaunch,
	Contacts:               windows.FOLDERID_Contacts,
	SidebarParts:           windows.FOLDERID_SidebarParts,
	SidebarDefaultParts:    windows.FOLDERID_SidebarDefaultParts,
	PublicGameTasks:        windows.FOLDERID_PublicGameTasks,
	GameTasks:              windows.FOLDERID_GameTasks,
	SavedGames:             windows.FOLDERID_SavedGames,
	Games:                  windows.FOLDERID_Games,
	SearchMapi:             windows.FOLDERID_SEARCH_MAPI,
	SearchCsc:              windows.FOLDERID_SEARCH_CSC,
	Links:                  windows.FOLDERID_Links,
	UsersFiles:             windows.FOLDERID_UsersFiles,
	UsersLibraries:         windows.FOLDERID_UsersLibraries,
	SearchHome:             windows.FOLDERID_SearchHome,
	OriginalImages:         windows.FOLDERID_OriginalImages,
	DocumentsLibrary:       windows.FOLDERID_DocumentsLibrary,
	MusicLibrary:           windows.FOLDERID_MusicLibrary,
	PicturesLibrary:        windows.FOLDERID_PicturesLibrary,
	VideosLibrary:          windows.FOLDERID_VideosLibrary,
	RecordedTVLibrary:      windows.FOLDERID_RecordedTVLibrary,
	HomeGroup:              windows.FOLDERID_HomeGroup,
	HomeGroupCurrentUser:   windows.FOLDERID_HomeGroupCurrentUser,
	DeviceMetadataStore:    windows.FOLDERID_DeviceMetadataStore,
	Libraries:              windows.FOLDERID_Libraries,
	PublicLibraries:        windows.FOLDERID_PublicLibraries,
	UserPinned:             windows.FOLDERID_UserPinned,
	ImplicitAppShortcuts:   windows.FOLDERID_ImplicitAppShortcuts,
	AccountPictures:        windows.FOLDERID_AccountPictures,
	PublicUserTiles:        windows.FOLDERID_PublicUserTiles,
	AppsFolder:             windows.FOLDERID_AppsFolder,
	StartMenuAllPrograms:   windows.FOLDERID_StartMenuAllPrograms,
	CommonStartMenuPlaces:  windows.FOLDERID_CommonStartMenuPlaces,
	ApplicationShortcuts:   windows.FOLDERID_ApplicationShortcuts,
	RoamingTiles:           windows.FOLDERID_RoamingTiles,
	RoamedTileImages:       windows.FOLDERID_RoamedTileImages,
	Screenshots:            windows.FOLDERID_Screenshots,
	CameraRoll:             windows.FOLDERID_CameraRoll,
	SkyDrive:               windows.FOLDERID_SkyDrive,
	OneDrive:               windows.FOLDERID_OneDrive,
	SkyDriveDocuments:      windows.FOLDERID_SkyDriveDocuments,
	SkyDrivePictures:       windows.FOLDERID_SkyDrivePictures,
	SkyDriveMusic:          windows.FOLDERID_SkyDriveMusic,
	SkyDriveCameraRoll:     windows.FOLDERID_SkyDriveCameraRoll,
	SearchHistory:          windows.FOLDERID_SearchHistory,
	SearchTemplates:        windows.FOLDERID_SearchTemplates,
	CameraRollLibrary:      windows.FOLDERID_CameraRollLibrary,
	SavedPictures:          windows.FOLDERID_SavedPictures,
	SavedPicturesLibrary:   windows.FOLDERID_SavedPicturesLibrary,
	RetailDemo:             windows.FOLDERID_RetailDemo,
	Device:                 windows.FOLDERID_Device,
	DevelopmentFiles:       windows.FOLDERID_DevelopmentFiles,
	Objects3D:              windows.FOLDERID_Objects3D,
	AppCaptures:            windows.FOLDERID_AppCaptures,
	LocalDocuments:         windows.FOLDERID_LocalDocuments,
	LocalPictures:          windows.FOLDERID_LocalPictures,
	LocalVideos:            windows.FOLDERID_LocalVideos,
	LocalMusic:             windows.FOLDERID_LocalMusic,
	LocalDownloads:         windows.FOLDERID_LocalDownloads,
	RecordedCalls:          windows.FOLDERID_RecordedCalls,
	AllAppMods:             windows.FOLDERID_AllAppMods,
	CurrentAppMods:         windows.FOLDERID_CurrentAppMods,
	AppDataDesktop:         windows.FOLDERID_AppDataDesktop,
	AppDataDocuments:       windows.FOLDERID_AppDataDocuments,
	AppDataFavorites:       windows.FOLDERID_AppDataFavorites,
	AppDataProgramData:     windows.FOLDERID_AppDataProgramData,
}
